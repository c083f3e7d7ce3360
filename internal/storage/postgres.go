package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ironcoach/ironcoach/internal/model/health"
)

// PostgresStore serves the health database populated by the import
// pipeline: daily_summaries, workouts/workout_details, knowledge_embeddings
// and chat_history.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects a pool to the given database URL.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

func (p *PostgresStore) DailyVolume(ctx context.Context, since *time.Time) ([]health.DailyVolume, error) {
	query := `SELECT date, strength_volume FROM daily_summaries WHERE strength_volume > 0`
	args := []any{}
	if since != nil {
		query += ` AND date >= $1`
		args = append(args, *since)
	}
	query += ` ORDER BY date ASC`

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query daily volume: %w", err)
	}
	defer rows.Close()

	var out []health.DailyVolume
	for rows.Next() {
		var v health.DailyVolume
		if err := rows.Scan(&v.Date, &v.Volume); err != nil {
			return nil, fmt.Errorf("scan daily volume: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (p *PostgresStore) RecentSummaries(ctx context.Context, limit int) ([]health.DailySummary, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT date, strength_volume, COALESCE(steps, 0), COALESCE(active_calories, 0), COALESCE(sleep_hours, 0)
		 FROM daily_summaries ORDER BY date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	var out []health.DailySummary
	for rows.Next() {
		var s health.DailySummary
		if err := rows.Scan(&s.Date, &s.StrengthVolume, &s.Steps, &s.ActiveCalories, &s.SleepHours); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *PostgresStore) RecentStrengthSets(ctx context.Context, dates int) ([]health.WorkoutSet, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT w.start_date, wd.exercise_name, wd.set_order, wd.weight, wd.reps, wd.rpe
		 FROM workout_details wd
		 JOIN workouts w ON wd.workout_id = w.workout_id
		 WHERE w.start_date::date IN (
			SELECT DISTINCT w2.start_date::date
			FROM workouts w2
			WHERE w2.workout_type = 'TraditionalStrengthTraining'
			ORDER BY w2.start_date::date DESC
			LIMIT $1
		 )
		 ORDER BY w.start_date DESC, wd.exercise_name, wd.set_order`, dates)
	if err != nil {
		return nil, fmt.Errorf("query strength sets: %w", err)
	}
	defer rows.Close()

	var out []health.WorkoutSet
	for rows.Next() {
		var s health.WorkoutSet
		if err := rows.Scan(&s.StartDate, &s.Exercise, &s.SetOrder, &s.Weight, &s.Reps, &s.RPE); err != nil {
			return nil, fmt.Errorf("scan strength set: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *PostgresStore) KnowledgeChunks(ctx context.Context) ([]health.KnowledgeChunk, error) {
	rows, err := p.pool.Query(ctx, `SELECT content_chunk, embedding FROM knowledge_embeddings`)
	if err != nil {
		return nil, fmt.Errorf("query knowledge: %w", err)
	}
	defer rows.Close()

	var out []health.KnowledgeChunk
	for rows.Next() {
		var c health.KnowledgeChunk
		var raw string
		if err := rows.Scan(&c.Content, &raw); err != nil {
			return nil, fmt.Errorf("scan knowledge chunk: %w", err)
		}
		// Embeddings are stored as JSON arrays by the ingestion pipeline.
		if err := json.Unmarshal([]byte(raw), &c.Embedding); err != nil {
			return nil, fmt.Errorf("decode embedding: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *PostgresStore) SaveChat(ctx context.Context, userText, coachText string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin chat save: %w", err)
	}
	defer tx.Rollback(ctx)

	const insert = `INSERT INTO chat_history (role, content) VALUES ($1, $2)`
	if _, err := tx.Exec(ctx, insert, "user", userText); err != nil {
		return fmt.Errorf("save user turn: %w", err)
	}
	if _, err := tx.Exec(ctx, insert, "model", coachText); err != nil {
		return fmt.Errorf("save coach turn: %w", err)
	}
	return tx.Commit(ctx)
}

func (p *PostgresStore) RecentChat(ctx context.Context, limit int) ([]health.ChatRecord, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT role, content, timestamp FROM chat_history ORDER BY timestamp DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}
	defer rows.Close()

	var out []health.ChatRecord
	for rows.Next() {
		var r health.ChatRecord
		if err := rows.Scan(&r.Role, &r.Content, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan chat record: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Flip newest-first query order back to chronological.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
