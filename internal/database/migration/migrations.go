package migration

var migrations = []Migration{
	{
		Version: 1,
		Name:    "init_users",
		SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id            UUID PRIMARY KEY,
				email         TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
	},
	{
		Version: 2,
		Name:    "init_profiles",
		SQL: `
			CREATE TABLE IF NOT EXISTS user_profiles (
				user_id             UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
				min_hourly_rate     DOUBLE PRECISION NOT NULL DEFAULT 0,
				max_hours_per_week  INT NOT NULL DEFAULT 0,
				desired_hours       INT NOT NULL DEFAULT 0,
				remote_ok           BOOLEAN NOT NULL DEFAULT false,
				onsite_ok           BOOLEAN NOT NULL DEFAULT false,
				location            TEXT NOT NULL DEFAULT '',
				preferred_locations JSONB NOT NULL DEFAULT '[]',
				skills              JSONB NOT NULL DEFAULT '[]',
				preferences         JSONB NOT NULL DEFAULT '{}',
				busy_schedule       JSONB NOT NULL DEFAULT '{}',
				study_commitments   JSONB NOT NULL DEFAULT '{}',
				updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
	},
	{
		Version: 3,
		Name:    "init_jobs",
		SQL: `
			CREATE TABLE IF NOT EXISTS jobs (
				id              TEXT PRIMARY KEY,
				title           TEXT NOT NULL,
				company         TEXT NOT NULL DEFAULT '',
				location        TEXT NOT NULL DEFAULT '',
				currency        TEXT NOT NULL DEFAULT '',
				source          TEXT NOT NULL DEFAULT '',
				apply_link      TEXT NOT NULL DEFAULT '',
				hourly_rate     DOUBLE PRECISION NOT NULL,
				hours_per_week  INT NOT NULL,
				required_skills JSONB NOT NULL DEFAULT '[]',
				schedule_blocks JSONB NOT NULL DEFAULT '[]',
				active          BOOLEAN NOT NULL DEFAULT true,
				ingested_at     TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_jobs_active ON jobs (active) WHERE active`,
	},
}
