package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/betpulse/betpulse/internal/auth"
	"github.com/betpulse/betpulse/internal/chat"
)

type SendMessageRequest struct {
	Room    string `json:"room" validate:"max=50"`
	Content string `json:"content" validate:"required,max=1000,excludesall=\x00"`
}

// HandleSendMessage posts a chat message
// @Summary Send chat message
// @Description Post a message to a room. Requires a full account.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /chat/messages [post]
func HandleSendMessage(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := auth.RequireIdentity(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgSendMessageFailed, err)
			return
		}

		var req SendMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Send message"); err != nil {
			return
		}

		msg, err := svc.Send(r.Context(), identity, req.Room, req.Content)
		if err != nil {
			respondServiceError(w, r, ErrMsgSendMessageFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, msg)
	}
}

// HandleGetMessages lists recent messages in chronological order
// @Summary Get chat messages
// @Tags chat
// @Produce json
// @Param room query string false "Room ID"
// @Param limit query int false "Max rows"
// @Success 200 {array} domain.Message
// @Router /chat/messages [get]
func HandleGetMessages(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}
		room := GetOptionalQueryParam(r, "room", "")

		messages, err := svc.GetMessages(r.Context(), room, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetMessagesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, messages)
	}
}

// HandleDeleteMessage removes a message
// @Summary Delete chat message
// @Description Delete a message. Author or admin only.
// @Tags chat
// @Produce json
// @Param messageID path string true "Message ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /chat/messages/{messageID} [delete]
func HandleDeleteMessage(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := auth.RequireIdentity(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgDeleteMessageFailed, err)
			return
		}

		messageID := chi.URLParam(r, "messageID")
		if err := svc.Delete(r.Context(), identity, messageID); err != nil {
			respondServiceError(w, r, ErrMsgDeleteMessageFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMessageDeletedSuccess})
	}
}

type HeartbeatRequest struct {
	Room string `json:"room" validate:"max=50"`
}

// HandleHeartbeat records the caller's presence in a room
// @Summary Presence heartbeat
// @Description Mark the caller as online in a room. Requires a full account.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body HeartbeatRequest true "Room"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /chat/presence/heartbeat [post]
func HandleHeartbeat(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := auth.RequireIdentity(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgHeartbeatFailed, err)
			return
		}

		var req HeartbeatRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Heartbeat"); err != nil {
			return
		}

		if err := svc.Heartbeat(r.Context(), identity, req.Room); err != nil {
			respondServiceError(w, r, ErrMsgHeartbeatFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHeartbeatSuccess})
	}
}

// HandleGetOnlineUsers lists users recently seen in a room
// @Summary Online users
// @Tags chat
// @Produce json
// @Param room query string false "Room ID"
// @Success 200 {array} domain.PresenceRecord
// @Router /chat/presence/online [get]
func HandleGetOnlineUsers(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := GetOptionalQueryParam(r, "room", "")

		online, err := svc.OnlineUsers(r.Context(), room)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetOnlineFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, online)
	}
}
