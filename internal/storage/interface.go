// Package storage persists and serves the health data the coach draws on.
// The Store interface has an in-memory implementation for tests and local
// development and a Postgres implementation for real deployments.
package storage

import (
	"context"
	"time"

	"github.com/ironcoach/ironcoach/internal/model/health"
)

// Store is the persistence surface consumed by the handlers and the coach
// service.
type Store interface {
	// DailyVolume returns days with nonzero strength volume in ascending
	// date order. A nil since means all-time.
	DailyVolume(ctx context.Context, since *time.Time) ([]health.DailyVolume, error)

	// RecentSummaries returns the most recent daily summaries, newest
	// first.
	RecentSummaries(ctx context.Context, limit int) ([]health.DailySummary, error)

	// RecentStrengthSets returns every set from the N most recent distinct
	// strength-workout dates, newest date first.
	RecentStrengthSets(ctx context.Context, dates int) ([]health.WorkoutSet, error)

	// KnowledgeChunks returns the embedded knowledge base.
	KnowledgeChunks(ctx context.Context) ([]health.KnowledgeChunk, error)

	// SaveChat appends a user/coach exchange to the chat history.
	SaveChat(ctx context.Context, userText, coachText string) error

	// RecentChat returns the last n chat records in chronological order.
	RecentChat(ctx context.Context, limit int) ([]health.ChatRecord, error)
}
