package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// newTestDB opens a throwaway SQLite database with the same tables the MySQL
// schema defines. All service SQL sticks to ? placeholders, so it runs
// unchanged on both engines.
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
	CREATE TABLE admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		senha_hash TEXT NOT NULL,
		nome TEXT NOT NULL,
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
	CREATE TABLE avaliacoes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		inscricao_id INTEGER NOT NULL UNIQUE,
		nota_geral INTEGER NOT NULL,
		nota_conteudo INTEGER NOT NULL,
		nota_organizacao INTEGER NOT NULL,
		nota_palestrantes INTEGER NOT NULL,
		comentario TEXT,
		sugestoes TEXT,
		created_at TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to init schema: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (*RegistrationService, *sql.DB) {
	t.Helper()
	db := newTestDB(t)
	return &RegistrationService{DB: db, Settings: &DBSettings{DB: db}}, db
}

func setSetting(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to set setting %s: %v", key, err)
	}
}
