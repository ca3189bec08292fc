package main

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigniq/internal/ai"
	"campaigniq/internal/campaign"
	"campaigniq/internal/comment"
	"campaigniq/internal/payment"
	"campaigniq/internal/user"
)

// tableColumns parses a CREATE TABLE statement into its column names.
// The statements keep one column per line with inline constraints, so
// the first token of each line is the column.
func tableColumns(t *testing.T, stmt string) map[string]bool {
	t.Helper()
	open := strings.Index(stmt, "(")
	end := strings.LastIndex(stmt, ")")
	require.True(t, open >= 0 && end > open, "not a CREATE TABLE statement:\n%s", stmt)

	cols := map[string]bool{}
	for _, line := range strings.Split(stmt[open+1:end], "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ","))
		if line == "" {
			continue
		}
		cols[strings.Fields(line)[0]] = true
	}
	return cols
}

func findTable(t *testing.T, name string) map[string]bool {
	t.Helper()
	prefix := "CREATE TABLE IF NOT EXISTS " + name + " "
	for _, stmt := range statements {
		if strings.HasPrefix(stmt, prefix) {
			return tableColumns(t, stmt)
		}
	}
	t.Fatalf("no CREATE TABLE statement for %q", name)
	return nil
}

func jsonKeys(t *testing.T, v any) []string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Every key a row model serializes must be a declared column, or the
// REST layer rejects the insert. Optional fields are populated so
// omitempty keys are exercised too.
func TestSchemaCoversRowModels(t *testing.T) {
	now := time.Now().UTC()

	rows := []struct {
		table string
		row   any
	}{
		{"users", user.User{ID: "u1", Email: "a@b.c", Name: "A", Picture: "p", IsAdmin: true, CreatedAt: now}},
		{"user_sessions", user.Session{Token: "tok", UserID: "u1", ExpiresAt: now, CreatedAt: now}},
		{"campaigns", campaign.Campaign{
			ID: "c1", Title: "t", Description: "d", Category: "tech",
			GoalAmount: 100, RaisedAmount: 10, CreatorID: "u1", CreatorName: "A",
			ImageURL: "img", Status: campaign.StatusActive, BackersCount: 1,
			DurationDays: 30, Tags: []string{"eco"},
			RewardTiers: []campaign.RewardTier{{Amount: 25, Description: "early"}},
			CreatedAt:   now,
		}},
		{"comments", comment.Comment{ID: "m1", CampaignID: "c1", UserID: "u1", UserName: "A", Content: "hi", CreatedAt: now}},
		{"pledges", payment.Pledge{ID: "p1", CampaignID: "c1", UserID: "u1", Amount: 10, SessionID: "cs_1", PaymentStatus: "completed", CreatedAt: now}},
		{"payment_transactions", payment.Transaction{
			ID: "t1", SessionID: "cs_1", Amount: 10, Currency: "usd",
			CampaignID: "c1", UserID: "u1", Metadata: map[string]string{"k": "v"},
			PaymentStatus: payment.StatusInitiated, CreatedAt: now,
		}},
		{"ai_analyses", ai.Analysis{ID: "a1", CampaignID: "c1", SuccessProbability: 75, AnalysisText: "ok", CreatedAt: now}},
		{"chat_messages", ai.ChatMessage{ID: "ch1", UserID: "u1", SessionID: "s1", Message: "q", Response: "r", CreatedAt: now}},
	}

	for _, tc := range rows {
		t.Run(tc.table, func(t *testing.T) {
			cols := findTable(t, tc.table)
			for _, key := range jsonKeys(t, tc.row) {
				assert.True(t, cols[key], "row key %q has no %s column", key, tc.table)
			}
		})
	}
}
