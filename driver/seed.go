package driver

import (
	"database/sql"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var defaultSettings = [][2]string{
	{"event_name", "Jornada Pedagógica 2026"},
	{"event_date", "25 e 26 de Fevereiro de 2026"},
	{"event_location", "Centro de Convenções — Tuntum, MA"},
	{"event_workload", "40"},
	{"vagas_dia1", "500"},
	{"vagas_dia2", "500"},
}

// Seed creates the default admin account and settings rows. It is safe to run
// more than once: existing rows are left untouched.
func Seed(db *sql.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@semed.tuntum.ma.gov.br"
	}
	senha := os.Getenv("SEED_ADMIN_PASSWORD")
	if senha == "" {
		senha = "admin2026"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var existing int
	err = db.QueryRow("SELECT COUNT(*) FROM admins WHERE email = ?", email).Scan(&existing)
	if err != nil {
		return err
	}
	if existing == 0 {
		now := time.Now().Format("2006-01-02 15:04:05")
		_, err = db.Exec(
			"INSERT INTO admins (email, senha_hash, nome, created_at) VALUES (?, ?, ?, ?)",
			email, string(hash), "Administrador SEMED", now,
		)
		if err != nil {
			return err
		}
		log.Println("Admin padrão criado:", email)
	} else {
		log.Println("Admin padrão já existe:", email)
	}

	for _, kv := range defaultSettings {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM settings WHERE `key` = ?", kv[0]).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			if _, err := db.Exec("INSERT INTO settings (`key`, `value`) VALUES (?, ?)", kv[0], kv[1]); err != nil {
				return err
			}
		}
	}
	log.Println("Configurações padrão criadas (ou já existiam)")
	return nil
}
