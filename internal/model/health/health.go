// Package health holds the persisted fitness domain records the coach
// reasons over.
package health

import "time"

// DailySummary is one day's aggregated health metrics.
type DailySummary struct {
	Date           time.Time `json:"date"`
	StrengthVolume float64   `json:"strengthVolume"`
	Steps          int       `json:"steps,omitempty"`
	ActiveCalories float64   `json:"activeCalories,omitempty"`
	SleepHours     float64   `json:"sleepHours,omitempty"`
}

// WorkoutSet is a single logged set within a strength workout. RPE is
// optional; many imports do not carry it.
type WorkoutSet struct {
	StartDate time.Time `json:"startDate"`
	Exercise  string    `json:"exercise"`
	SetOrder  int       `json:"setOrder"`
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	RPE       *float64  `json:"rpe,omitempty"`
}

// Volume is the load moved in this set.
func (s WorkoutSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// KnowledgeChunk is one embedded passage from the coaching knowledge base.
type KnowledgeChunk struct {
	Content   string
	Embedding []float64
}

// ChatRecord is one persisted line of coach conversation history.
type ChatRecord struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// DailyVolume is a ready-to-chart (date, volume) point.
type DailyVolume struct {
	Date   time.Time
	Volume float64
}
