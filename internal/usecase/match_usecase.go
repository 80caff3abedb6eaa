package usecase

import (
	"context"
	"errors"
	"log"

	"moonlight/internal/config"
	"moonlight/internal/domain/matching"
	"moonlight/internal/repository"

	"github.com/google/uuid"
)

// maxMatchLimit caps client-supplied result limits.
const maxMatchLimit = 25

type MatchUsecase interface {
	SingleMatches(ctx context.Context, userID uuid.UUID, limit int) ([]matching.Result, error)
	PairMatches(ctx context.Context, userID uuid.UUID, limit int) ([]matching.Result, error)
}

type Match struct {
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
	cache    FeedCache
	cfg      config.MatchingConfig
	logger   *log.Logger
}

func NewMatchUsecase(jobs repository.JobRepository, profiles repository.ProfileRepository, cache FeedCache, cfg config.MatchingConfig, logger *log.Logger) *Match {
	return &Match{jobs: jobs, profiles: profiles, cache: cache, cfg: cfg, logger: logger}
}

// SingleMatches returns the user's best individually feasible jobs. An empty
// list is a normal outcome — an empty or fully infeasible feed is not an
// error.
func (u *Match) SingleMatches(ctx context.Context, userID uuid.UUID, limit int) ([]matching.Result, error) {
	profile, jobs, err := u.loadInputs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return matching.MatchSingle(jobs, profile, clampLimit(limit, u.cfg.SingleLimit)), nil
}

// PairMatches returns the user's best simultaneously workable job pairs,
// with the pair enumeration bounded by the configured candidate cap.
func (u *Match) PairMatches(ctx context.Context, userID uuid.UUID, limit int) ([]matching.Result, error) {
	profile, jobs, err := u.loadInputs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return matching.MatchPairs(jobs, profile, matching.PairOptions{
		Limit:        clampLimit(limit, u.cfg.PairLimit),
		CandidateCap: u.cfg.PairCandidateCap,
	}), nil
}

func (u *Match) loadInputs(ctx context.Context, userID uuid.UUID) (matching.Profile, []matching.Job, error) {
	if userID == uuid.Nil {
		return matching.Profile{}, nil, ErrUnauthorized
	}

	rec, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return matching.Profile{}, nil, ErrProfileNotFound
		}
		return matching.Profile{}, nil, ErrInternal
	}
	profile, err := profileFromRecord(rec)
	if err != nil {
		// Records are validated on write; a parse failure here means the
		// stored row was corrupted out of band.
		if u.logger != nil {
			u.logger.Printf("[Match] corrupt profile record | user=%s err=%v", userID, err)
		}
		return matching.Profile{}, nil, ErrInternal
	}

	jobs, err := u.loadJobs(ctx)
	if err != nil {
		return matching.Profile{}, nil, ErrInternal
	}
	return profile, jobs, nil
}

func (u *Match) loadJobs(ctx context.Context) ([]matching.Job, error) {
	if u.cache != nil {
		var cached []matching.Job
		if ok, err := u.cache.GetJSON(ctx, JobsFeedCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListActiveJobs(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, JobsFeedCacheKey, jobs, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Match] feed cache write failed: %v", err)
		}
	}
	return jobs, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxMatchLimit {
		return maxMatchLimit
	}
	return limit
}
