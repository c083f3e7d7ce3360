package ai

import (
	"fmt"
	"strings"

	"github.com/ironcoach/ironcoach/internal/model/health"
)

const systemRole = `**Role:** You are an expert health and fitness coach. Your primary goal is to provide safe, effective, and evidence-based advice for overall health and performance.

**Your Task:** Your user will ask a question. Based on their question, the provided knowledge base context, and their detailed workout logs, provide a direct, helpful, and nuanced answer.

**Critical Analysis Instructions:**
1. Acknowledge Data Gaps Briefly: If RPE is not logged for a set, state it once and then focus your analysis on the data that IS available.
2. Analyze Workouts Comparatively: Compare the most recent workout to the previous ones. Look for changes in volume, reps, or weight on a per-exercise basis.
3. Synthesize Volume and RPE: Connect the change in volume to the perceived effort to assess progress and intensity.`

// buildSystemPrompt assembles the full context block handed to the model as
// the system message.
func buildSystemPrompt(knowledgeContext string, summaries []health.DailySummary, sets []health.WorkoutSet) string {
	var b strings.Builder
	b.WriteString(systemRole)
	b.WriteString("\n\n---\n**Knowledge Base Context:**\n")
	b.WriteString(knowledgeContext)
	b.WriteString("\n---\n**My Recent Health Data:**\nDaily Summaries:\n")
	b.WriteString(formatSummaries(summaries))
	b.WriteString("\nStrength Workout Details:\n")
	b.WriteString(formatWorkoutLog(sets))
	b.WriteString("\n---")
	return b.String()
}

func formatSummaries(summaries []health.DailySummary) string {
	if len(summaries) == 0 {
		return "No daily summaries available."
	}

	var b strings.Builder
	for _, s := range summaries {
		fmt.Fprintf(&b, "%s: strength volume %.0f lbs", s.Date.Format("2006-01-02"), s.StrengthVolume)
		if s.Steps > 0 {
			fmt.Fprintf(&b, ", steps %d", s.Steps)
		}
		if s.SleepHours > 0 {
			fmt.Fprintf(&b, ", sleep %.1fh", s.SleepHours)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatWorkoutLog renders sets grouped per workout date with the computed
// total daily volume, preserving the per-set weight/reps/RPE detail the
// coach analyzes.
func formatWorkoutLog(sets []health.WorkoutSet) string {
	if len(sets) == 0 {
		return "No recent strength workouts with details found."
	}

	var b strings.Builder
	var currentDay string
	flushDay := func(day string, daySets []health.WorkoutSet) {
		var total float64
		for _, s := range daySets {
			total += s.Volume()
		}
		fmt.Fprintf(&b, "\n**Workout on: %s**\n", day)
		fmt.Fprintf(&b, "  (Total Daily Volume: %d lbs)\n", int(total))

		var exercise string
		for _, s := range daySets {
			if s.Exercise != exercise {
				exercise = s.Exercise
				fmt.Fprintf(&b, "  - %s:\n", exercise)
			}
			rpe := "RPE: Not Logged"
			if s.RPE != nil {
				rpe = fmt.Sprintf("RPE: %g", *s.RPE)
			}
			fmt.Fprintf(&b, "    - Set %d: %g lbs x %d reps (%s)\n", s.SetOrder, s.Weight, s.Reps, rpe)
		}
	}

	var daySets []health.WorkoutSet
	for _, s := range sets {
		day := s.StartDate.Format("2006-01-02")
		if day != currentDay {
			if len(daySets) > 0 {
				flushDay(currentDay, daySets)
			}
			currentDay = day
			daySets = daySets[:0]
		}
		daySets = append(daySets, s)
	}
	if len(daySets) > 0 {
		flushDay(currentDay, daySets)
	}

	return b.String()
}
