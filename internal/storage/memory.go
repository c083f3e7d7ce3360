package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ironcoach/ironcoach/internal/model/health"
)

// MemoryStore keeps everything in process memory. Suitable for tests and
// for running the server without a database.
type MemoryStore struct {
	mu        sync.RWMutex
	summaries []health.DailySummary
	sets      []health.WorkoutSet
	chunks    []health.KnowledgeChunk
	chat      []health.ChatRecord
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AddSummary seeds a daily summary.
func (m *MemoryStore) AddSummary(s health.DailySummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries = append(m.summaries, s)
}

// AddSet seeds a workout set.
func (m *MemoryStore) AddSet(s health.WorkoutSet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets = append(m.sets, s)
}

// AddChunk seeds a knowledge chunk.
func (m *MemoryStore) AddChunk(c health.KnowledgeChunk) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunks = append(m.chunks, c)
}

func (m *MemoryStore) DailyVolume(_ context.Context, since *time.Time) ([]health.DailyVolume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]health.DailyVolume, 0, len(m.summaries))
	for _, s := range m.summaries {
		if s.StrengthVolume <= 0 {
			continue
		}
		if since != nil && s.Date.Before(*since) {
			continue
		}
		out = append(out, health.DailyVolume{Date: s.Date, Volume: s.StrengthVolume})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *MemoryStore) RecentSummaries(_ context.Context, limit int) ([]health.DailySummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sorted := append([]health.DailySummary(nil), m.summaries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (m *MemoryStore) RecentStrengthSets(_ context.Context, dates int) ([]health.WorkoutSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := map[string]bool{}
	var days []string
	sorted := append([]health.WorkoutSet(nil), m.sets...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartDate.After(sorted[j].StartDate) })
	for _, s := range sorted {
		day := s.StartDate.Format("2006-01-02")
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	if dates > 0 && len(days) > dates {
		days = days[:dates]
	}
	keep := map[string]bool{}
	for _, d := range days {
		keep[d] = true
	}

	var out []health.WorkoutSet
	for _, s := range sorted {
		if keep[s.StartDate.Format("2006-01-02")] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryStore) KnowledgeChunks(_ context.Context) ([]health.KnowledgeChunk, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]health.KnowledgeChunk(nil), m.chunks...), nil
}

func (m *MemoryStore) SaveChat(_ context.Context, userText, coachText string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	m.chat = append(m.chat,
		health.ChatRecord{Role: "user", Content: userText, Timestamp: now},
		health.ChatRecord{Role: "coach", Content: coachText, Timestamp: now},
	)
	return nil
}

func (m *MemoryStore) RecentChat(_ context.Context, limit int) ([]health.ChatRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := 0
	if limit > 0 && len(m.chat) > limit {
		start = len(m.chat) - limit
	}
	return append([]health.ChatRecord(nil), m.chat[start:]...), nil
}
