package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"sheetsync-service/internal/model"
	mid "sheetsync-service/internal/middleware"
	"sheetsync-service/pkg/config"
	"sheetsync-service/pkg/database"
	"sheetsync-service/prometheus"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSyncKey = "test-secret"

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "handler_test"},
	})
	os.Exit(m.Run())
}

func setupServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.MenuItem{},
		&model.HoursEntry{},
		&model.Location{},
		&model.SyncStatus{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	database.Set(db)
	t.Cleanup(func() { database.Set(nil) })

	e := echo.New()
	e.POST("/sync", Sync, mid.SyncKeyMiddleware(testSyncKey))
	e.GET("/business/:id/menu", GetMenu)
	e.GET("/business/:id/hours", GetHours)
	e.GET("/business/:id/location", GetLocation)
	e.GET("/business/:id/status", GetStatus)
	return e
}

func doJSON(e *echo.Echo, method, path, body, syncKey string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if syncKey != "" {
		req.Header.Set(mid.SyncKeyHeader, syncKey)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestMenuSyncEndToEnd(t *testing.T) {
	e := setupServer(t)

	payload := `{
		"business_id": "biz-1",
		"sheet": "menu",
		"values": [["id","name","price","description","active"],[1,"Taco",3.5,"","TRUE"]],
		"timestamp": "2026-08-29T12:00:00Z"
	}`
	rec := doJSON(e, http.MethodPost, "/sync", payload, testSyncKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("sync status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["status"] != "ok" {
		t.Errorf("sync response = %v, want status ok", body)
	}

	rec = doJSON(e, http.MethodGet, "/business/biz-1/menu", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("menu read status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["business_id"] != "biz-1" {
		t.Errorf("business_id = %v, want biz-1", body["business_id"])
	}
	menu, ok := body["menu"].([]interface{})
	if !ok || len(menu) != 1 {
		t.Fatalf("menu = %v, want one item", body["menu"])
	}
	item := menu[0].(map[string]interface{})
	if item["id"] != float64(1) || item["name"] != "Taco" || item["price"] != 3.5 {
		t.Errorf("item = %v, want id=1 name=Taco price=3.5", item)
	}
	if item["description"] != nil {
		t.Errorf("description = %v, want null", item["description"])
	}
	if item["active"] != true {
		t.Errorf("active = %v, want true", item["active"])
	}
}

func TestNumericBusinessIDCanonicalized(t *testing.T) {
	e := setupServer(t)

	payload := `{"business_id": 42, "sheet": "menu", "values": [["id","name","price","description","active"]]}`
	rec := doJSON(e, http.MethodPost, "/sync", payload, testSyncKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("sync status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodGet, "/business/42/status", "", "")
	body := decodeBody(t, rec)
	status, ok := body["status"].(map[string]interface{})
	if !ok {
		t.Fatalf("status = %v, want object", body["status"])
	}
	if status["last_sheet"] != "menu" {
		t.Errorf("last_sheet = %v, want menu", status["last_sheet"])
	}
}

func TestSyncRejectsWrongKeyWithoutWrites(t *testing.T) {
	e := setupServer(t)

	payload := `{"business_id": "biz-1", "sheet": "menu", "values": [["id","name","price","description","active"],[1,"Taco",3.5,"","TRUE"]]}`
	rec := doJSON(e, http.MethodPost, "/sync", payload, "wrong-key")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/business/biz-1/menu", "", "")
	body := decodeBody(t, rec)
	if menu := body["menu"].([]interface{}); len(menu) != 0 {
		t.Errorf("menu should be empty after rejected sync, got %v", menu)
	}
	rec = doJSON(e, http.MethodGet, "/business/biz-1/status", "", "")
	if body := decodeBody(t, rec); body["status"] != nil {
		t.Errorf("status should be null after rejected sync, got %v", body["status"])
	}
}

func TestSyncValidation(t *testing.T) {
	e := setupServer(t)

	tests := []struct {
		name    string
		payload string
	}{
		{"missing business_id", `{"sheet": "menu", "values": [["id"]]}`},
		{"blank business_id", `{"business_id": "  ", "sheet": "menu", "values": [["id"]]}`},
		{"unknown sheet", `{"business_id": "biz-1", "sheet": "inventory", "values": [["id"]]}`},
		{"missing values", `{"business_id": "biz-1", "sheet": "menu"}`},
		{"values not two-dimensional", `{"business_id": "biz-1", "sheet": "menu", "values": ["id","name"]}`},
		{"body not json", `this is not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/sync", tt.payload, testSyncKey)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}

	// None of the rejected payloads may have advanced the sync status.
	rec := doJSON(e, http.MethodGet, "/business/biz-1/status", "", "")
	if body := decodeBody(t, rec); body["status"] != nil {
		t.Errorf("status should be null after rejected payloads, got %v", body["status"])
	}
}

func TestSyncParseFailureReturns500(t *testing.T) {
	e := setupServer(t)

	payload := `{"business_id": "biz-1", "sheet": "menu", "values": [["id","name","price","description","active"],["abc","Taco","3.5","","TRUE"]]}`
	rec := doJSON(e, http.MethodPost, "/sync", payload, testSyncKey)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 for unparseable id", rec.Code)
	}
}

func TestHoursSyncNormalizesAndOrders(t *testing.T) {
	e := setupServer(t)

	payload := `{
		"business_id": "biz-1",
		"sheet": "hours",
		"values": [["day","open","close"],["Sunday","10:00:00","14:00"],["Monday","11:00:00","21:00:00"],["Tuesday","",""]]
	}`
	rec := doJSON(e, http.MethodPost, "/sync", payload, testSyncKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("sync status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodGet, "/business/biz-1/hours", "", "")
	body := decodeBody(t, rec)
	hours := body["hours"].([]interface{})
	if len(hours) != 3 {
		t.Fatalf("got %d hour rows, want 3", len(hours))
	}

	first := hours[0].(map[string]interface{})
	if first["day"] != "Monday" {
		t.Errorf("first day = %v, want Monday", first["day"])
	}
	if first["open"] != "11:00" {
		t.Errorf("open = %v, want 11:00", first["open"])
	}
	tuesday := hours[1].(map[string]interface{})
	if tuesday["open"] != nil || tuesday["close"] != nil {
		t.Errorf("blank times should read back null, got %v", tuesday)
	}
	last := hours[2].(map[string]interface{})
	if last["day"] != "Sunday" {
		t.Errorf("last day = %v, want Sunday", last["day"])
	}
}

func TestLocationSyncAndDefaultRead(t *testing.T) {
	e := setupServer(t)

	// No sync yet: default object with null fields, not an error.
	rec := doJSON(e, http.MethodGet, "/business/biz-1/location", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("location read status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	loc := body["location"].(map[string]interface{})
	if loc["current_spot"] != nil || loc["note"] != nil {
		t.Errorf("default location = %v, want null fields", loc)
	}

	payload := `{
		"business_id": "biz-1",
		"sheet": "location",
		"values": [["field","value"],["current_spot","5th & Main"],["note","until 3pm"]]
	}`
	for i := 0; i < 2; i++ { // synced twice, still one row
		rec = doJSON(e, http.MethodPost, "/sync", payload, testSyncKey)
		if rec.Code != http.StatusOK {
			t.Fatalf("sync status = %d, body %s", rec.Code, rec.Body.String())
		}
	}

	rec = doJSON(e, http.MethodGet, "/business/biz-1/location", "", "")
	body = decodeBody(t, rec)
	loc = body["location"].(map[string]interface{})
	if loc["current_spot"] != "5th & Main" || loc["note"] != "until 3pm" {
		t.Errorf("location = %v, want synced values", loc)
	}
}

func TestStatusReflectsLastSync(t *testing.T) {
	e := setupServer(t)
	before := time.Now().UTC().Add(-time.Second)

	payload := `{"business_id": "biz-1", "sheet": "hours", "values": [["day","open","close"]]}`
	rec := doJSON(e, http.MethodPost, "/sync", payload, testSyncKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("sync status = %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/business/biz-1/status", "", "")
	body := decodeBody(t, rec)
	status, ok := body["status"].(map[string]interface{})
	if !ok {
		t.Fatalf("status = %v, want object", body["status"])
	}
	if status["last_sheet"] != "hours" {
		t.Errorf("last_sheet = %v, want hours", status["last_sheet"])
	}
	syncedAt, err := time.Parse(time.RFC3339Nano, status["last_synced_at"].(string))
	if err != nil {
		t.Fatalf("parse last_synced_at %v: %v", status["last_synced_at"], err)
	}
	if syncedAt.Before(before) {
		t.Errorf("last_synced_at = %v, want >= %v", syncedAt, before)
	}
}

func TestEmptyMenuReadIsNotAnError(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/business/ghost/menu", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	menu, ok := body["menu"].([]interface{})
	if !ok {
		t.Fatalf("menu = %v, want empty array", body["menu"])
	}
	if len(menu) != 0 {
		t.Errorf("menu = %v, want empty", menu)
	}
}
