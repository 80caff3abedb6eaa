package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"moonlight/internal/domain/matching"
	"moonlight/internal/domain/schedule"
	"moonlight/internal/repository"
)

var ErrInvalidJob = errors.New("invalid job")

// IngestBlockInput mirrors the discovery feed's schedule block shape.
type IngestBlockInput struct {
	Day          string
	StartMinutes int
	EndMinutes   int
}

type IngestJobInput struct {
	ID             string
	Title          string
	Company        string
	Location       string
	Currency       string
	Source         string
	ApplyLink      string
	HourlyRate     float64
	RequiredSkills []string
	HoursPerWeek   int
	Blocks         []IngestBlockInput
}

// Notifier fans an ingest event out to connected sessions.
type Notifier interface {
	MatchesRefreshed(source string, jobCount int)
}

type JobIngestUsecase interface {
	Ingest(ctx context.Context, items []IngestJobInput) (int, error)
}

type JobIngest struct {
	jobs     repository.JobRepository
	cache    FeedCache
	notifier Notifier
	logger   *log.Logger
}

func NewJobIngestUsecase(jobs repository.JobRepository, cache FeedCache, notifier Notifier, logger *log.Logger) *JobIngest {
	return &JobIngest{jobs: jobs, cache: cache, notifier: notifier, logger: logger}
}

// Ingest validates and stores a discovery feed batch. Validation is
// all-or-nothing: one malformed job rejects the whole batch so the
// collaborator sees the problem instead of a silently thinner feed. This is
// the boundary the engine relies on — after this point every TimeBlock is
// structurally valid.
func (u *JobIngest) Ingest(ctx context.Context, items []IngestJobInput) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	jobs := make([]matching.Job, 0, len(items))
	for _, item := range items {
		job, err := buildJob(item)
		if err != nil {
			return 0, err
		}
		jobs = append(jobs, job)
	}

	if err := u.jobs.UpsertJobs(ctx, jobs); err != nil {
		return 0, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, JobsFeedCacheKey); err != nil && u.logger != nil {
			u.logger.Printf("[Ingest] feed cache invalidation failed: %v", err)
		}
	}

	if u.notifier != nil {
		u.notifier.MatchesRefreshed(ingestSource(items), len(jobs))
	}

	if u.logger != nil {
		u.logger.Printf("[Ingest] stored jobs | count=%d source=%s", len(jobs), ingestSource(items))
	}
	return len(jobs), nil
}

func buildJob(in IngestJobInput) (matching.Job, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return matching.Job{}, fmt.Errorf("%w: missing id", ErrInvalidJob)
	}
	if strings.TrimSpace(in.Title) == "" {
		return matching.Job{}, fmt.Errorf("%w: job %s: missing title", ErrInvalidJob, id)
	}
	if in.HourlyRate < 0 {
		return matching.Job{}, fmt.Errorf("%w: job %s: negative hourly rate", ErrInvalidJob, id)
	}
	if in.HoursPerWeek <= 0 || in.HoursPerWeek > 168 {
		return matching.Job{}, fmt.Errorf("%w: job %s: hours per week must be in 1..168", ErrInvalidJob, id)
	}

	blocks := make([]schedule.TimeBlock, 0, len(in.Blocks))
	for _, raw := range in.Blocks {
		day, err := schedule.ParseDay(raw.Day)
		if err != nil {
			return matching.Job{}, fmt.Errorf("%w: job %s: %v", ErrInvalidJob, id, err)
		}
		block, err := schedule.NewTimeBlock(day, raw.StartMinutes, raw.EndMinutes)
		if err != nil {
			return matching.Job{}, fmt.Errorf("%w: job %s: %v", ErrInvalidJob, id, err)
		}
		blocks = append(blocks, block)
	}

	return matching.Job{
		ID:             id,
		Title:          strings.TrimSpace(in.Title),
		Company:        strings.TrimSpace(in.Company),
		Location:       strings.TrimSpace(in.Location),
		Currency:       strings.TrimSpace(in.Currency),
		Source:         strings.TrimSpace(in.Source),
		ApplyLink:      strings.TrimSpace(in.ApplyLink),
		HourlyRate:     in.HourlyRate,
		RequiredSkills: in.RequiredSkills,
		HoursPerWeek:   in.HoursPerWeek,
		Blocks:         blocks,
	}, nil
}

func ingestSource(items []IngestJobInput) string {
	for _, it := range items {
		if s := strings.TrimSpace(it.Source); s != "" {
			return s
		}
	}
	return "unknown"
}
