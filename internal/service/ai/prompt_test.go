package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/ironcoach/ironcoach/internal/model/health"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFormatWorkoutLogGroupsAndTotals(t *testing.T) {
	rpe := 8.5
	sets := []health.WorkoutSet{
		{StartDate: day("2025-06-12"), Exercise: "Bench Press", SetOrder: 1, Weight: 185, Reps: 5, RPE: &rpe},
		{StartDate: day("2025-06-12"), Exercise: "Bench Press", SetOrder: 2, Weight: 185, Reps: 5},
		{StartDate: day("2025-06-10"), Exercise: "Squat", SetOrder: 1, Weight: 225, Reps: 5},
	}

	got := formatWorkoutLog(sets)

	if !strings.Contains(got, "**Workout on: 2025-06-12**") || !strings.Contains(got, "**Workout on: 2025-06-10**") {
		t.Fatalf("missing workout date headers:\n%s", got)
	}
	// 185*5*2 = 1850 for the first day, 225*5 = 1125 for the second.
	if !strings.Contains(got, "(Total Daily Volume: 1850 lbs)") {
		t.Fatalf("missing first day total:\n%s", got)
	}
	if !strings.Contains(got, "(Total Daily Volume: 1125 lbs)") {
		t.Fatalf("missing second day total:\n%s", got)
	}
	if !strings.Contains(got, "Set 1: 185 lbs x 5 reps (RPE: 8.5)") {
		t.Fatalf("missing logged RPE line:\n%s", got)
	}
	if !strings.Contains(got, "Set 2: 185 lbs x 5 reps (RPE: Not Logged)") {
		t.Fatalf("missing RPE gap line:\n%s", got)
	}
}

func TestFormatWorkoutLogEmpty(t *testing.T) {
	if got := formatWorkoutLog(nil); got != "No recent strength workouts with details found." {
		t.Fatalf("unexpected empty-log text: %q", got)
	}
}

func TestBuildSystemPromptSections(t *testing.T) {
	got := buildSystemPrompt("lift heavy, recover well", []health.DailySummary{
		{Date: day("2025-06-12"), StrengthVolume: 1850, Steps: 9000},
	}, nil)

	for _, want := range []string{
		"expert health and fitness coach",
		"Knowledge Base Context",
		"lift heavy, recover well",
		"Daily Summaries:",
		"2025-06-12: strength volume 1850 lbs, steps 9000",
		"No recent strength workouts",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("system prompt missing %q:\n%s", want, got)
		}
	}
}
