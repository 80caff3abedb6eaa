package usecase

import (
	"context"
	"errors"
	"fmt"

	"moonlight/internal/domain/matching"
	"moonlight/internal/domain/schedule"
	"moonlight/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileUsecase interface {
	Save(ctx context.Context, userID uuid.UUID, rec repository.ProfileRecord) error
	Get(ctx context.Context, userID uuid.UUID) (repository.ProfileRecord, error)
}

type Profile struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) Save(ctx context.Context, userID uuid.UUID, rec repository.ProfileRecord) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := validateProfileRecord(rec); err != nil {
		return err
	}
	if err := u.profiles.Upsert(ctx, userID, rec); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (repository.ProfileRecord, error) {
	if userID == uuid.Nil {
		return repository.ProfileRecord{}, ErrUnauthorized
	}
	rec, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.ProfileRecord{}, ErrProfileNotFound
		}
		return repository.ProfileRecord{}, ErrInternal
	}
	return rec, nil
}

// validateProfileRecord rejects structurally bad profiles before storage, so
// the matching engine only ever sees valid data.
func validateProfileRecord(rec repository.ProfileRecord) error {
	if rec.MinHourlyRate < 0 {
		return fmt.Errorf("%w: negative min hourly rate", ErrInvalidProfile)
	}
	if rec.MaxHoursPerWeek <= 0 || rec.MaxHoursPerWeek > 168 {
		return fmt.Errorf("%w: max hours per week must be in 1..168", ErrInvalidProfile)
	}
	if rec.DesiredHoursPerWeek < 0 || rec.DesiredHoursPerWeek > rec.MaxHoursPerWeek {
		return fmt.Errorf("%w: desired hours out of range", ErrInvalidProfile)
	}
	if !rec.RemoteOK && !rec.OnsiteOK {
		return fmt.Errorf("%w: at least one of remote_ok/onsite_ok must be set", ErrInvalidProfile)
	}
	if _, err := parseScheduleMap(rec.BusySchedule); err != nil {
		return fmt.Errorf("%w: busy schedule: %v", ErrInvalidProfile, err)
	}
	if _, err := parseScheduleMap(rec.StudyCommitments); err != nil {
		return fmt.Errorf("%w: study commitments: %v", ErrInvalidProfile, err)
	}
	return nil
}

// profileFromRecord converts a stored record into the engine's immutable
// profile value. Records are validated on write, so failures here indicate
// storage corruption and are internal errors.
func profileFromRecord(rec repository.ProfileRecord) (matching.Profile, error) {
	busy, err := parseScheduleMap(rec.BusySchedule)
	if err != nil {
		return matching.Profile{}, err
	}
	study, err := parseScheduleMap(rec.StudyCommitments)
	if err != nil {
		return matching.Profile{}, err
	}

	return matching.NewProfile(matching.ProfileParams{
		MinHourlyRate:       rec.MinHourlyRate,
		MaxHoursPerWeek:     rec.MaxHoursPerWeek,
		DesiredHoursPerWeek: rec.DesiredHoursPerWeek,
		RemoteOK:            rec.RemoteOK,
		OnsiteOK:            rec.OnsiteOK,
		Location:            rec.Location,
		PreferredLocations:  rec.PreferredLocations,
		Skills:              rec.Skills,
		Preferences:         rec.Preferences,
		BusySchedule:        busy,
		StudyCommitments:    study,
	}), nil
}

func parseScheduleMap(raw map[string][][2]int) (map[schedule.Day][]schedule.Interval, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[schedule.Day][]schedule.Interval, len(raw))
	for rawDay, pairs := range raw {
		day, err := schedule.ParseDay(rawDay)
		if err != nil {
			return nil, err
		}
		for _, p := range pairs {
			iv, err := schedule.NewInterval(p[0], p[1])
			if err != nil {
				return nil, fmt.Errorf("%s: %v", day, err)
			}
			out[day] = append(out[day], iv)
		}
	}
	return out, nil
}
