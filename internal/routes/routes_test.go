package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/config"
	dbpkg "github.com/arteldev/salon-scheduler/internal/db"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := dbpkg.Seed(db, "admin-secret"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret", AdminPassword: "admin-secret"}
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, w.Body.String())
	}
	return out
}

func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": "admin-secret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: status %d, body %s", w.Code, w.Body.String())
	}
	return decode(t, w)["token"].(string)
}

func registerClient(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":  "anna",
		"password":  "secret123",
		"full_name": "Anna Ivanova",
		"phone":     "79150001122",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d, body %s", w.Code, w.Body.String())
	}
	return decode(t, w)["token"].(string)
}

// seedCatalog creates a category, a service and a master through the
// admin endpoints and returns the service and master ids.
func seedCatalog(t *testing.T, r *gin.Engine, adminToken string) (serviceID, masterID float64) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/categories", adminToken, gin.H{
		"name": "Hair care",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category: status %d, body %s", w.Code, w.Body.String())
	}
	categoryID := decode(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/services", adminToken, gin.H{
		"category_id":  categoryID,
		"name":         "Haircut",
		"price":        1500,
		"duration_min": 60,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create service: status %d, body %s", w.Code, w.Body.String())
	}
	serviceID = decode(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/masters", adminToken, gin.H{
		"full_name":      "Elena Kuznetsova",
		"specialization": "Hairdresser",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create master: status %d, body %s", w.Code, w.Body.String())
	}
	masterID = decode(t, w)["id"].(float64)

	return serviceID, masterID
}

func TestBookingFlowEndToEnd(t *testing.T) {
	r, _ := setupRouter(t)

	adminToken := loginAdmin(t, r)
	clientToken := registerClient(t, r)
	serviceID, masterID := seedCatalog(t, r, adminToken)

	payload := gin.H{
		"master_id":       masterID,
		"service_id":      serviceID,
		"date":            "2024-03-01",
		"time":            "10:00",
		"passport_number": "4500 123456",
		"planned_start":   "2024-03-01",
		"planned_end":     "2024-03-03",
	}

	// The client books their linked record; client_id in the payload
	// is not needed.
	w := doJSON(t, r, http.MethodPost, "/api/appointments", clientToken, payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("booking: status %d, body %s", w.Code, w.Body.String())
	}
	booked := decode(t, w)
	if booked["status"] != "scheduled" {
		t.Fatalf("expected scheduled, got %v", booked["status"])
	}
	if booked["total_price"].(float64) != 1500 {
		t.Fatalf("expected price snapshot 1500, got %v", booked["total_price"])
	}
	appointmentID := booked["id"].(float64)

	// Same slot again conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/appointments", clientToken, payload)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on double booking, got %d: %s", w.Code, w.Body.String())
	}
	if decode(t, w)["error_code"] != "master_unavailable" {
		t.Fatalf("expected master_unavailable, body %s", w.Body.String())
	}

	// The booked master is gone from the availability listing.
	w = doJSON(t, r, http.MethodGet, "/api/masters/available?date=2024-03-01&time=10:00", clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("availability: status %d", w.Code)
	}
	if total := decode(t, w)["total"].(float64); total != 0 {
		t.Fatalf("expected no available masters, got %v", total)
	}

	// The client sees their own appointment.
	w = doJSON(t, r, http.MethodGet, "/api/me/appointments", clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me/appointments: status %d", w.Code)
	}
	if total := decode(t, w)["total"].(float64); total != 1 {
		t.Fatalf("expected 1 own appointment, got %v", total)
	}

	// Operator walks the appointment to cancelled, which frees the slot.
	w = doJSON(t, r, http.MethodPatch,
		fmt.Sprintf("/api/appointments/%.0f/status", appointmentID),
		adminToken, gin.H{"status": "cancelled"})
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/api/masters/%.0f/availability?date=2024-03-01&time=10:00", masterID),
		clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("check: status %d", w.Code)
	}
	if decode(t, w)["available"] != true {
		t.Fatalf("expected slot to be free after cancel, body %s", w.Body.String())
	}
}

func TestBookingRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", "", gin.H{})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
}

func TestAdminRoutesRejectClientRole(t *testing.T) {
	r, _ := setupRouter(t)
	clientToken := registerClient(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/appointments", clientToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for client on admin route, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/masters", clientToken, gin.H{
		"full_name": "Someone",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for client creating masters, got %d", w.Code)
	}
}

func TestStatusTransitionRejectsIllegalJump(t *testing.T) {
	r, _ := setupRouter(t)

	adminToken := loginAdmin(t, r)
	clientToken := registerClient(t, r)
	serviceID, masterID := seedCatalog(t, r, adminToken)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", clientToken, gin.H{
		"master_id":       masterID,
		"service_id":      serviceID,
		"date":            "2024-03-01",
		"time":            "10:00",
		"passport_number": "4500 123456",
		"planned_start":   "2024-03-01",
		"planned_end":     "2024-03-03",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("booking: status %d, body %s", w.Code, w.Body.String())
	}
	appointmentID := decode(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodPatch,
		fmt.Sprintf("/api/appointments/%.0f/status", appointmentID),
		adminToken, gin.H{"status": "completed"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for scheduled->completed, got %d: %s", w.Code, w.Body.String())
	}
	if decode(t, w)["error_code"] != "invalid_status_transition" {
		t.Fatalf("expected invalid_status_transition, body %s", w.Body.String())
	}
}
