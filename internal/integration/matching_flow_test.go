package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"moonlight/internal/config"
	"moonlight/internal/database"
	"moonlight/internal/database/migration"
	dbpostgres "moonlight/internal/database/postgres"
	"moonlight/internal/delivery/http/middleware"
	"moonlight/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

const testIngestKey = "integration-test-key"

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	AccessToken string `json:"access_token"`
}

type matchResult struct {
	Jobs []struct {
		ID string `json:"id"`
	} `json:"jobs"`
	TotalHours int     `json:"total_hours"`
	TotalPay   float64 `json:"total_pay"`
	Score      float64 `json:"score"`
	Insights   []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"insights"`
}

// TestIntegration_RegisterProfileIngestMatch walks the full flow: register a
// user, save a profile, push a feed batch through ingest, then read single
// and pair matches back. Needs a reachable Postgres; skipped otherwise.
func TestIntegration_RegisterProfileIngestMatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	if err := migration.Run(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	email := "it-" + strings.ToLower(t.Name()) + "@example.test"
	defer cleanupSeed(t, db, email)

	app := newTestApp(t, db)

	tok := registerAndGetJWT(t, app, email)
	if tok == "" {
		t.Fatalf("register: empty access_token")
	}

	saveProfile(t, app, tok)
	ingestJobs(t, app)

	singles := getMatches(t, app, tok, "/api/v1/matches/single")
	if len(singles) == 0 {
		t.Fatalf("expected single matches after ingest")
	}
	if singles[0].Jobs[0].ID != "it-remote-dev" {
		t.Fatalf("expected it-remote-dev ranked first, got %q", singles[0].Jobs[0].ID)
	}

	pairs := getMatches(t, app, tok, "/api/v1/matches/pairs")
	if len(pairs) == 0 {
		t.Fatalf("expected pair matches after ingest")
	}
	if pairs[0].TotalHours > 40 {
		t.Fatalf("pair exceeds hour cap: %d", pairs[0].TotalHours)
	}
	if len(pairs[0].Jobs) != 2 {
		t.Fatalf("expected 2 jobs in pair, got %d", len(pairs[0].Jobs))
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("MOONLIGHT_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("MOONLIGHT_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("MOONLIGHT_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("MOONLIGHT_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("MOONLIGHT_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("MOONLIGHT_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set MOONLIGHT_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func newTestApp(t *testing.T, db database.DB) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{AppName: "moonlight-test", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{
			AccessSecret:     "integration-access-secret",
			RefreshSecret:    "integration-refresh-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 168 * time.Hour,
		},
		Matching: config.MatchingConfig{SingleLimit: 5, PairLimit: 3, PairCandidateCap: 40},
		Ingest:   config.IngestConfig{APIKey: testIngestKey},
	}

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())
	routes.Register(app, routes.Deps{Config: cfg, DB: db})
	return app
}

func registerAndGetJWT(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	body := map[string]string{"email": email, "password": "integration-secret-1"}
	data := doJSON(t, app, "POST", "/api/v1/auth/register", body, nil, fiber.StatusOK)

	var auth authData
	if err := json.Unmarshal(data, &auth); err != nil {
		t.Fatalf("decode auth data: %v", err)
	}
	return auth.AccessToken
}

func saveProfile(t *testing.T, app *fiber.App, tok string) {
	t.Helper()

	body := map[string]any{
		"min_hourly_rate":        10,
		"max_hours_per_week":     40,
		"desired_hours_per_week": 30,
		"remote_ok":              true,
		"onsite_ok":              false,
		"skills":                 []string{"go", "sql"},
		"busy_schedule": map[string]any{
			"mon": [][]any{{"09:00", "12:00"}},
		},
	}
	doJSON(t, app, "PUT", "/api/v1/users/me/profile", body, map[string]string{
		"Authorization": "Bearer " + tok,
	}, fiber.StatusOK)
}

func ingestJobs(t *testing.T, app *fiber.App) {
	t.Helper()

	body := map[string]any{
		"jobs": []map[string]any{
			{
				"id":             "it-remote-dev",
				"title":          "Remote Go Developer",
				"location":       "Remote",
				"currency":       "USD",
				"source":         "integration-feed",
				"hourly_rate":    30,
				"hours_per_week": 20,
				"schedule_blocks": []map[string]any{
					{"day": "tue", "start": "14:00", "end": "18:00"},
				},
			},
			{
				"id":             "it-evening-support",
				"title":          "Evening Support Agent",
				"location":       "Remote",
				"currency":       "USD",
				"source":         "integration-feed",
				"hourly_rate":    14,
				"hours_per_week": 15,
				"schedule_blocks": []map[string]any{
					{"day": "tue", "start": "19:00", "end": "22:00"},
				},
			},
		},
	}
	doJSON(t, app, "POST", "/api/v1/jobs/ingest", body, map[string]string{
		"X-API-Key": testIngestKey,
	}, fiber.StatusOK)
}

func getMatches(t *testing.T, app *fiber.App, tok, path string) []matchResult {
	t.Helper()

	data := doJSON(t, app, "GET", path, nil, map[string]string{
		"Authorization": "Bearer " + tok,
	}, fiber.StatusOK)

	var results []matchResult
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("decode matches from %s: %v", path, err)
	}
	return results
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string, wantStatus int) json.RawMessage {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer func() { _ = res.Body.Close() }()

	var env semanticResponse
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	if res.StatusCode != wantStatus {
		t.Fatalf("%s %s: status %d (message=%q), want %d", method, path, res.StatusCode, env.Message, wantStatus)
	}
	return env.Data
}

func cleanupSeed(t *testing.T, db database.DB, email string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.Exec(ctx, `DELETE FROM user_profiles WHERE user_id IN (SELECT id FROM users WHERE email = $1)`, email); err != nil {
		t.Logf("cleanup user_profiles: %v", err)
	}
	if _, err := db.Exec(ctx, `DELETE FROM users WHERE email = $1`, email); err != nil {
		t.Logf("cleanup users: %v", err)
	}
	if _, err := db.Exec(ctx, `DELETE FROM jobs WHERE id IN ('it-remote-dev', 'it-evening-support')`); err != nil {
		t.Logf("cleanup jobs: %v", err)
	}
}

func stringsOrDefault(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
