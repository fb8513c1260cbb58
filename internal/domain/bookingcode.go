package domain

import "time"

// BookingCodeStatus is the lifecycle state of a shared betting slip
type BookingCodeStatus string

const (
	BookingCodeStatusActive  BookingCodeStatus = "active"
	BookingCodeStatusWon     BookingCodeStatus = "won"
	BookingCodeStatusLost    BookingCodeStatus = "lost"
	BookingCodeStatusExpired BookingCodeStatus = "expired"
)

// BookingCode is a user-shared multi-match betting slip.
// PotentialWin is computed once at creation (stake x odds) and never recomputed.
// Expiry is advisory: status is flipped manually, and active listings filter
// by expiry at read time.
type BookingCode struct {
	ID           string            `json:"id"`
	Code         string            `json:"code"`
	Platform     string            `json:"platform"`
	MatchIDs     []string          `json:"matches"`
	Description  string            `json:"description"`
	Odds         float64           `json:"odds"`
	Stake        float64           `json:"stake"`
	PotentialWin float64           `json:"potential_win"`
	ExpiresAt    time.Time         `json:"expires_at"`
	Status       BookingCodeStatus `json:"status"`
	CreatedBy    string            `json:"created_by"`
	CreatedAt    time.Time         `json:"created_at"`
}

// EnrichedBookingCode carries the resolved match documents alongside the code.
// References that no longer resolve are dropped, not errored.
type EnrichedBookingCode struct {
	BookingCode
	MatchDetails []Match `json:"match_details"`
}
