package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Users resolved from the upstream auth provider

CREATE TABLE IF NOT EXISTS users (
    user_id VARCHAR(64) PRIMARY KEY,
    name VARCHAR(100),
    email VARCHAR(255),
    is_anonymous BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- At most one role row per user; absence implies 'user'
CREATE TABLE IF NOT EXISTS user_roles (
    user_id VARCHAR(64) PRIMARY KEY REFERENCES users(user_id) ON DELETE CASCADE,
    role VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'user')),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Fixtures
CREATE TABLE IF NOT EXISTS matches (
    match_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    home_team VARCHAR(100) NOT NULL,
    away_team VARCHAR(100) NOT NULL,
    league VARCHAR(100) NOT NULL,
    kickoff_at TIMESTAMPTZ NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'upcoming'
        CHECK (status IN ('upcoming', 'live', 'finished')),
    home_score INTEGER,
    away_score INTEGER,
    odds_home DOUBLE PRECISION NOT NULL,
    odds_draw DOUBLE PRECISION NOT NULL,
    odds_away DOUBLE PRECISION NOT NULL,
    external_id VARCHAR(50),
    venue VARCHAR(150),
    home_team_logo TEXT,
    away_team_logo TEXT,
    minute INTEGER,
    half_time BOOLEAN,
    extra_time BOOLEAN,
    penalties BOOLEAN,
    last_updated TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_matches_status ON matches(status);
CREATE INDEX IF NOT EXISTS idx_matches_kickoff ON matches(kickoff_at);
CREATE INDEX IF NOT EXISTS idx_matches_league ON matches(league);
CREATE INDEX IF NOT EXISTS idx_matches_external ON matches(external_id);

-- AI-generated predictions, three per generator invocation
CREATE TABLE IF NOT EXISTS predictions (
    prediction_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    match_id UUID NOT NULL REFERENCES matches(match_id) ON DELETE CASCADE,
    prediction_type VARCHAR(30) NOT NULL
        CHECK (prediction_type IN ('match_result', 'over_under', 'both_teams_score')),
    prediction VARCHAR(50) NOT NULL,
    confidence INTEGER NOT NULL,
    ai_model VARCHAR(50) NOT NULL,
    reasoning TEXT NOT NULL,
    odds DOUBLE PRECISION NOT NULL,
    potential_return DOUBLE PRECISION NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'pending'
        CHECK (status IN ('pending', 'won', 'lost')),
    actual_result VARCHAR(50),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_predictions_match ON predictions(match_id);
CREATE INDEX IF NOT EXISTS idx_predictions_status ON predictions(status);
CREATE INDEX IF NOT EXISTS idx_predictions_confidence ON predictions(confidence);

-- User-shared betting slips
CREATE TABLE IF NOT EXISTS booking_codes (
    code_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    code VARCHAR(50) NOT NULL,
    platform VARCHAR(50) NOT NULL,
    match_ids UUID[] NOT NULL DEFAULT '{}',
    description TEXT NOT NULL DEFAULT '',
    odds DOUBLE PRECISION NOT NULL,
    stake DOUBLE PRECISION NOT NULL,
    potential_win DOUBLE PRECISION NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'active'
        CHECK (status IN ('active', 'won', 'lost', 'expired')),
    created_by VARCHAR(64) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_booking_codes_status ON booking_codes(status);
CREATE INDEX IF NOT EXISTS idx_booking_codes_expiry ON booking_codes(expires_at);
CREATE INDEX IF NOT EXISTS idx_booking_codes_creator ON booking_codes(created_by);

-- Chat messages; user_name is a write-time snapshot, reactions are JSONB
CREATE TABLE IF NOT EXISTS messages (
    message_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    room_id VARCHAR(100) NOT NULL,
    user_id VARCHAR(64) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    user_name VARCHAR(255) NOT NULL,
    content TEXT NOT NULL,
    reactions JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_messages_room ON messages(room_id, created_at DESC);

-- One presence row per (user, room), upserted on heartbeat
CREATE TABLE IF NOT EXISTS chat_presence (
    user_id VARCHAR(64) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    room_id VARCHAR(100) NOT NULL,
    user_name VARCHAR(255) NOT NULL,
    last_seen TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, room_id)
);

CREATE INDEX IF NOT EXISTS idx_presence_room_time ON chat_presence(room_id, last_seen);
CREATE INDEX IF NOT EXISTS idx_presence_last_seen ON chat_presence(last_seen);
`
