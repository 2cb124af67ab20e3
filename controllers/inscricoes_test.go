package controllers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"jornada-backend/models"
	"jornada-backend/services"
	"jornada-backend/utils"

	"github.com/gorilla/mux"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", "file:"+path+"?cache=shared&mode=rwc")
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE inscricoes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		cpf TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		telefone TEXT NOT NULL,
		instituicao TEXT NOT NULL,
		cargo TEXT NOT NULL,
		dia_participacao TEXT NOT NULL DEFAULT 'ambos',
		presente_dia1 INTEGER NOT NULL DEFAULT 0,
		presente_dia2 INTEGER NOT NULL DEFAULT 0,
		presente INTEGER NOT NULL DEFAULT 0,
		data_inscricao TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE TABLE certificados (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		inscricao_id INTEGER NOT NULL UNIQUE,
		arquivo_path TEXT,
		gerado INTEGER NOT NULL DEFAULT 0,
		enviado INTEGER NOT NULL DEFAULT 0,
		data_gerado TEXT,
		data_enviado TEXT
	);
	CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to init schema: %v", err)
	}
	return db
}

func newTestRouter(t *testing.T, db *sql.DB) *mux.Router {
	t.Helper()

	settings := &services.DBSettings{DB: db}
	svc := &services.RegistrationService{DB: db, Settings: settings}
	controller := InscricaoController{Service: svc, Settings: settings}

	router := mux.NewRouter()
	router.HandleFunc("/api/inscricoes", controller.Create()).Methods("POST")
	router.HandleFunc("/api/inscricoes/vagas", controller.Vacancy(db)).Methods("GET")
	router.HandleFunc("/api/checkin", controller.CheckIn()).Methods("POST")
	return router
}

func adminHeader(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateAdminToken(models.Admin{ID: 1, Email: "admin@example.com"})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return "Bearer " + token
}

func TestCreateRegistrationEndpoint(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	body := `{"nome":"Maria da Silva","cpf":"529.982.247-25","email":"maria@example.com","telefone":"99988887777","instituicao":"Escola Centro","cargo":"Professora","dia_participacao":"dia1"}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/inscricoes", strings.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Same CPF again, different punctuation.
	dup := strings.ReplaceAll(body, "529.982.247-25", "52998224725")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/inscricoes", strings.NewReader(dup)))
	if w.Code != http.StatusConflict {
		t.Fatalf("Expected 409 for duplicate CPF, got %d: %s", w.Code, w.Body.String())
	}
}

func TestVacancyEndpoint(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	body := `{"nome":"Maria","cpf":"52998224725","email":"m@example.com","telefone":"1","instituicao":"E","cargo":"P","dia_participacao":"ambos"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/inscricoes", strings.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/inscricoes/vagas", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var report models.VacancyReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("Failed to decode report: %v", err)
	}
	if report.Dia1.Total != 1 || report.Dia2.Total != 1 {
		t.Errorf("Expected ambos to count on both days, got %d/%d", report.Dia1.Total, report.Dia2.Total)
	}
	if report.Dia1.Available != 499 {
		t.Errorf("Expected 499 available on dia1, got %d", report.Dia1.Available)
	}
}

func TestCheckInEndpoint(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	db := newTestDB(t)
	router := newTestRouter(t, db)

	body := `{"nome":"Maria","cpf":"52998224725","email":"m@example.com","telefone":"1","instituicao":"E","cargo":"P","dia_participacao":"dia1"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/inscricoes", strings.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.Code)
	}

	// No token.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/checkin", strings.NewReader(`{"cpf":"52998224725","dia":"dia1"}`)))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}

	header := adminHeader(t)
	r := httptest.NewRequest("POST", "/api/checkin", strings.NewReader(`{"cpf":"52998224725","dia":"dia1"}`))
	r.Header.Set("Authorization", header)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result models.CheckInResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if result.Already {
		t.Error("Expected Already=false on first check-in")
	}

	r = httptest.NewRequest("POST", "/api/checkin", strings.NewReader(`{"cpf":"52998224725","dia":"dia1"}`))
	r.Header.Set("Authorization", header)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on repeat check-in, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if !result.Already {
		t.Error("Expected Already=true on repeat check-in")
	}
}
