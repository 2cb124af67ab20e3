package services

import (
	"os"
	"testing"

	"jornada-backend/models"
)

func TestGenerateAllSkipsAbsentees(t *testing.T) {
	svc, db := newTestService(t)
	registerFor(t, svc, "00000000001", models.Dia1)

	certSvc := &CertificateService{DB: db, Settings: &DBSettings{DB: db}, OutputDir: t.TempDir()}

	gerados, candidatos, err := certSvc.GenerateAll()
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if gerados != 0 || candidatos != 0 {
		t.Errorf("Expected nothing to generate without check-ins, got %d/%d", gerados, candidatos)
	}
}

func TestGenerateAllCreatesCertificates(t *testing.T) {
	svc, db := newTestService(t)
	registerFor(t, svc, "00000000001", models.Dia1)
	registerFor(t, svc, "00000000002", models.Ambos)

	if _, err := svc.CheckIn("00000000001", models.Dia1); err != nil {
		t.Fatalf("Check-in failed: %v", err)
	}

	outputDir := t.TempDir()
	certSvc := &CertificateService{DB: db, Settings: &DBSettings{DB: db}, OutputDir: outputDir}

	gerados, candidatos, err := certSvc.GenerateAll()
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if candidatos != 1 {
		t.Fatalf("Expected 1 candidate, got %d", candidatos)
	}
	if gerados != 1 {
		t.Fatalf("Expected 1 generated certificate, got %d", gerados)
	}

	var path string
	var gerado bool
	if err := db.QueryRow("SELECT arquivo_path, gerado FROM certificados").Scan(&path, &gerado); err != nil {
		t.Fatalf("Failed to read certificate row: %v", err)
	}
	if !gerado {
		t.Error("Expected gerado flag set")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected PDF file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty PDF file")
	}

	// Second run finds nothing new.
	gerados, candidatos, err = certSvc.GenerateAll()
	if err != nil {
		t.Fatalf("Second GenerateAll failed: %v", err)
	}
	if gerados != 0 || candidatos != 0 {
		t.Errorf("Expected idempotent second run, got %d/%d", gerados, candidatos)
	}
}

func TestCertificateStats(t *testing.T) {
	svc, db := newTestService(t)
	registerFor(t, svc, "00000000001", models.Dia1)
	registerFor(t, svc, "00000000002", models.Dia1)

	if _, err := svc.CheckIn("00000000001", models.Dia1); err != nil {
		t.Fatalf("Check-in failed: %v", err)
	}
	if _, err := svc.CheckIn("00000000002", models.Dia1); err != nil {
		t.Fatalf("Check-in failed: %v", err)
	}

	certSvc := &CertificateService{DB: db, Settings: &DBSettings{DB: db}, OutputDir: t.TempDir()}
	if _, _, err := certSvc.GenerateAll(); err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}

	stats, err := certSvc.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalPresentes != 2 {
		t.Errorf("Expected 2 presentes, got %d", stats.TotalPresentes)
	}
	if stats.CertificadosGerados != 2 {
		t.Errorf("Expected 2 generated, got %d", stats.CertificadosGerados)
	}
	if stats.CertificadosEnviados != 0 {
		t.Errorf("Expected 0 sent, got %d", stats.CertificadosEnviados)
	}
	if stats.Pendentes != 2 {
		t.Errorf("Expected 2 pending, got %d", stats.Pendentes)
	}
}
