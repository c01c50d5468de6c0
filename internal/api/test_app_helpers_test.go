package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nmakarov/levelup/internal/db"
	"github.com/nmakarov/levelup/internal/models"
	"github.com/nmakarov/levelup/internal/services"
	"gorm.io/gorm"
)

var testToday = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "levelup-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	template := map[string]models.TaskState{
		"100 Push-ups": models.CountedTask(0, 100),
		"Read 15 min":  models.BooleanTask(false),
	}
	checklist := services.NewChecklistService(db.NewRepositories(database).DayRecords, template, time.UTC, 0)

	handler := NewHandler(checklist)
	handler.now = func() time.Time { return testToday }

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response %s: %v", raw, err)
	}
}

func seedDayRecord(t *testing.T, database *gorm.DB, username string, date time.Time, tasks map[string]models.TaskState) {
	t.Helper()

	record := models.DayRecord{
		Username:    username,
		Date:        date,
		Tasks:       tasks,
		CustomTasks: []models.CustomTask{},
	}
	if err := db.NewDayRecordRepository(database).Create(&record); err != nil {
		t.Fatalf("seed day record: %v", err)
	}
}
