package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"moonlight/internal/database"
	"moonlight/internal/domain/matching"
	"moonlight/internal/domain/schedule"
)

type JobRepository interface {
	UpsertJobs(ctx context.Context, jobs []matching.Job) error
	ListActiveJobs(ctx context.Context) ([]matching.Job, error)
}

// blockRecord is the jsonb shape of one schedule block. Days are stored as
// short names so rows stay readable in psql.
type blockRecord struct {
	Day   string `json:"day"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) UpsertJobs(ctx context.Context, jobs []matching.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	for _, j := range jobs {
		skills, err := json.Marshal(orEmptySlice(j.RequiredSkills))
		if err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
		blocks, err := json.Marshal(encodeBlocks(j.Blocks))
		if err != nil {
			_ = tx.Rollback(ctx)
			return err
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO jobs (
				id, title, company, location, currency, source, apply_link,
				hourly_rate, hours_per_week, required_skills, schedule_blocks,
				active, ingested_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, now())
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				company = EXCLUDED.company,
				location = EXCLUDED.location,
				currency = EXCLUDED.currency,
				source = EXCLUDED.source,
				apply_link = EXCLUDED.apply_link,
				hourly_rate = EXCLUDED.hourly_rate,
				hours_per_week = EXCLUDED.hours_per_week,
				required_skills = EXCLUDED.required_skills,
				schedule_blocks = EXCLUDED.schedule_blocks,
				active = true,
				ingested_at = now()`,
			j.ID, j.Title, j.Company, j.Location, j.Currency, j.Source, j.ApplyLink,
			j.HourlyRate, j.HoursPerWeek, skills, blocks,
		); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresJobRepository) ListActiveJobs(ctx context.Context) ([]matching.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, company, location, currency, source, apply_link,
		       hourly_rate, hours_per_week, required_skills, schedule_blocks
		FROM jobs
		WHERE active
		ORDER BY ingested_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Job, 0)
	for rows.Next() {
		var j matching.Job
		var skills, blocks []byte
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Location, &j.Currency, &j.Source, &j.ApplyLink,
			&j.HourlyRate, &j.HoursPerWeek, &skills, &blocks,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &j.RequiredSkills); err != nil {
			return nil, fmt.Errorf("job %s: decode skills: %w", j.ID, err)
		}
		decoded, err := decodeBlocks(blocks)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", j.ID, err)
		}
		j.Blocks = decoded
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeBlocks(blocks []schedule.TimeBlock) []blockRecord {
	out := make([]blockRecord, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, blockRecord{Day: b.Day.String(), Start: b.Start, End: b.End})
	}
	return out
}

// decodeBlocks rebuilds domain blocks through the validating constructor, so
// a row corrupted outside the ingest path surfaces as an error rather than a
// silently wrong schedule.
func decodeBlocks(raw []byte) ([]schedule.TimeBlock, error) {
	var recs []blockRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("decode schedule blocks: %w", err)
	}
	out := make([]schedule.TimeBlock, 0, len(recs))
	for _, rec := range recs {
		day, err := schedule.ParseDay(rec.Day)
		if err != nil {
			return nil, err
		}
		b, err := schedule.NewTimeBlock(day, rec.Start, rec.End)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
