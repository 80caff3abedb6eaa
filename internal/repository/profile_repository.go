package repository

import (
	"context"
	"encoding/json"
	"errors"

	"moonlight/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRecord is the storage shape of a user's matching profile. Days are
// short names ("Mon".."Sun") and intervals are [start, end] minute pairs;
// validation and conversion to domain values happen in the usecase layer.
type ProfileRecord struct {
	MinHourlyRate       float64             `json:"min_hourly_rate"`
	MaxHoursPerWeek     int                 `json:"max_hours_per_week"`
	DesiredHoursPerWeek int                 `json:"desired_hours_per_week"`
	RemoteOK            bool                `json:"remote_ok"`
	OnsiteOK            bool                `json:"onsite_ok"`
	Location            string              `json:"location"`
	PreferredLocations  []string            `json:"preferred_locations"`
	Skills              []string            `json:"skills"`
	Preferences         map[string]string   `json:"preferences"`
	BusySchedule        map[string][][2]int `json:"busy_schedule"`
	StudyCommitments    map[string][][2]int `json:"study_commitments"`
}

type ProfileRepository interface {
	Upsert(ctx context.Context, userID uuid.UUID, rec ProfileRecord) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (ProfileRecord, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, userID uuid.UUID, rec ProfileRecord) error {
	prefLocs, err := json.Marshal(orEmptySlice(rec.PreferredLocations))
	if err != nil {
		return err
	}
	skills, err := json.Marshal(orEmptySlice(rec.Skills))
	if err != nil {
		return err
	}
	prefs, err := json.Marshal(orEmptyMap(rec.Preferences))
	if err != nil {
		return err
	}
	busy, err := json.Marshal(orEmptySchedule(rec.BusySchedule))
	if err != nil {
		return err
	}
	study, err := json.Marshal(orEmptySchedule(rec.StudyCommitments))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_profiles (
			user_id, min_hourly_rate, max_hours_per_week, desired_hours,
			remote_ok, onsite_ok, location, preferred_locations, skills,
			preferences, busy_schedule, study_commitments, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
		ON CONFLICT (user_id) DO UPDATE SET
			min_hourly_rate = EXCLUDED.min_hourly_rate,
			max_hours_per_week = EXCLUDED.max_hours_per_week,
			desired_hours = EXCLUDED.desired_hours,
			remote_ok = EXCLUDED.remote_ok,
			onsite_ok = EXCLUDED.onsite_ok,
			location = EXCLUDED.location,
			preferred_locations = EXCLUDED.preferred_locations,
			skills = EXCLUDED.skills,
			preferences = EXCLUDED.preferences,
			busy_schedule = EXCLUDED.busy_schedule,
			study_commitments = EXCLUDED.study_commitments,
			updated_at = now()`,
		userID, rec.MinHourlyRate, rec.MaxHoursPerWeek, rec.DesiredHoursPerWeek,
		rec.RemoteOK, rec.OnsiteOK, rec.Location, prefLocs, skills,
		prefs, busy, study,
	)
	return err
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (ProfileRecord, error) {
	var rec ProfileRecord
	var prefLocs, skills, prefs, busy, study []byte

	row := r.db.QueryRow(ctx, `
		SELECT min_hourly_rate, max_hours_per_week, desired_hours,
		       remote_ok, onsite_ok, location, preferred_locations, skills,
		       preferences, busy_schedule, study_commitments
		FROM user_profiles WHERE user_id = $1`, userID)
	err := row.Scan(
		&rec.MinHourlyRate, &rec.MaxHoursPerWeek, &rec.DesiredHoursPerWeek,
		&rec.RemoteOK, &rec.OnsiteOK, &rec.Location, &prefLocs, &skills,
		&prefs, &busy, &study,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProfileRecord{}, ErrProfileNotFound
		}
		return ProfileRecord{}, err
	}

	if err := json.Unmarshal(prefLocs, &rec.PreferredLocations); err != nil {
		return ProfileRecord{}, err
	}
	if err := json.Unmarshal(skills, &rec.Skills); err != nil {
		return ProfileRecord{}, err
	}
	if err := json.Unmarshal(prefs, &rec.Preferences); err != nil {
		return ProfileRecord{}, err
	}
	if err := json.Unmarshal(busy, &rec.BusySchedule); err != nil {
		return ProfileRecord{}, err
	}
	if err := json.Unmarshal(study, &rec.StudyCommitments); err != nil {
		return ProfileRecord{}, err
	}
	return rec, nil
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func orEmptySchedule(m map[string][][2]int) map[string][][2]int {
	if m == nil {
		return map[string][][2]int{}
	}
	return m
}
