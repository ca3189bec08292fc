// cmd/setup/main.go
//
// One-shot schema bootstrap. Connects straight to Postgres (the REST
// layer cannot create tables) and applies the schema idempotently.
package main

import (
	"log"

	"campaigniq/internal/config"
	"campaigniq/pkg/db"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		picture TEXT,
		password_hash TEXT,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS user_sessions (
		session_token TEXT PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_sessions_user_id ON user_sessions(user_id)`,

	`CREATE TABLE IF NOT EXISTS campaigns (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		goal_amount NUMERIC NOT NULL,
		raised_amount NUMERIC NOT NULL DEFAULT 0,
		backers_count INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active',
		duration_days INTEGER NOT NULL DEFAULT 30,
		tags JSONB NOT NULL DEFAULT '[]',
		reward_tiers JSONB NOT NULL DEFAULT '[]',
		image_url TEXT,
		creator_id UUID NOT NULL REFERENCES users(id),
		creator_name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_creator_id ON campaigns(creator_id)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_status ON campaigns(status)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_category ON campaigns(category)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id UUID PRIMARY KEY,
		campaign_id UUID NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id),
		user_name TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_campaign_id ON comments(campaign_id)`,

	`CREATE TABLE IF NOT EXISTS pledges (
		id UUID PRIMARY KEY,
		campaign_id UUID NOT NULL REFERENCES campaigns(id),
		user_id UUID NOT NULL REFERENCES users(id),
		amount NUMERIC NOT NULL,
		session_id TEXT,
		payment_status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pledges_campaign_id ON pledges(campaign_id)`,

	`CREATE TABLE IF NOT EXISTS payment_transactions (
		id UUID PRIMARY KEY,
		session_id TEXT UNIQUE NOT NULL,
		campaign_id UUID NOT NULL REFERENCES campaigns(id),
		user_id UUID NOT NULL REFERENCES users(id),
		amount NUMERIC NOT NULL,
		currency TEXT NOT NULL DEFAULT 'usd',
		metadata JSONB NOT NULL DEFAULT '{}',
		payment_status TEXT NOT NULL DEFAULT 'initiated',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payment_transactions_session_id ON payment_transactions(session_id)`,

	`CREATE TABLE IF NOT EXISTS ai_analyses (
		id UUID PRIMARY KEY,
		campaign_id UUID NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
		success_probability NUMERIC NOT NULL,
		analysis_text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ai_analyses_campaign_id ON ai_analyses(campaign_id)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id UUID PRIMARY KEY,
		user_id UUID,
		session_id TEXT NOT NULL,
		message TEXT NOT NULL,
		response TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_session_id ON chat_messages(session_id)`,
}

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer database.Close()

	for _, stmt := range statements {
		if _, err := database.Exec(stmt); err != nil {
			log.Fatalf("Schema statement failed: %v\n%s", err, stmt)
		}
	}

	log.Println("Schema is up to date")
}
