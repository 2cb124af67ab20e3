package services

import (
	"errors"
	"testing"

	"jornada-backend/models"
)

func registerFor(t *testing.T, svc *RegistrationService, cpf, dia string) int64 {
	t.Helper()
	in := validInput()
	in.CPF = cpf
	in.DiaParticipacao = dia
	id, err := svc.Register(in)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return id
}

func TestCheckInInvalidDay(t *testing.T) {
	svc, _ := newTestService(t)

	for _, dia := range []string{"ambos", "dia3", ""} {
		if _, err := svc.CheckIn("52998224725", dia); !errors.Is(err, ErrInvalidDay) {
			t.Errorf("Day %q: expected ErrInvalidDay, got %v", dia, err)
		}
	}
}

func TestCheckInInvalidCPF(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.CheckIn("123", models.Dia1); !errors.Is(err, ErrInvalidCPF) {
		t.Errorf("Expected ErrInvalidCPF, got %v", err)
	}
}

func TestCheckInNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.CheckIn("52998224725", models.Dia1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCheckInWrongDay(t *testing.T) {
	svc, _ := newTestService(t)
	registerFor(t, svc, "52998224725", models.Dia1)

	_, err := svc.CheckIn("52998224725", models.Dia2)
	var enrollErr *NotEnrolledError
	if !errors.As(err, &enrollErr) {
		t.Fatalf("Expected NotEnrolledError, got %v", err)
	}
	if enrollErr.DiaInscrito != models.Dia1 {
		t.Errorf("Expected enrolled day dia1, got %s", enrollErr.DiaInscrito)
	}
}

func TestCheckInIsIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	id := registerFor(t, svc, "529.982.247-25", models.Dia1)

	result, err := svc.CheckIn("52998224725", models.Dia1)
	if err != nil {
		t.Fatalf("First check-in failed: %v", err)
	}
	if result.Already {
		t.Error("Expected Already=false on first check-in")
	}
	if result.Nome != "Maria da Silva" {
		t.Errorf("Expected participant name, got %q", result.Nome)
	}

	// Same QR code scanned twice: formatted CPF this time.
	result, err = svc.CheckIn("529.982.247-25", models.Dia1)
	if err != nil {
		t.Fatalf("Second check-in failed: %v", err)
	}
	if !result.Already {
		t.Error("Expected Already=true on second check-in")
	}

	var dia1, dia2, presente bool
	err = db.QueryRow("SELECT presente_dia1, presente_dia2, presente FROM inscricoes WHERE id = ?", id).Scan(&dia1, &dia2, &presente)
	if err != nil {
		t.Fatalf("Failed to read flags: %v", err)
	}
	if !dia1 {
		t.Error("Expected presente_dia1 set")
	}
	if dia2 {
		t.Error("Expected presente_dia2 untouched")
	}
	if !presente {
		t.Error("Expected legacy presente flag set")
	}
}

func TestCheckInAmbosBothDaysIndependent(t *testing.T) {
	svc, db := newTestService(t)
	id := registerFor(t, svc, "52998224725", models.Ambos)

	if _, err := svc.CheckIn("52998224725", models.Dia1); err != nil {
		t.Fatalf("Check-in dia1 failed: %v", err)
	}

	var dia1, dia2 bool
	if err := db.QueryRow("SELECT presente_dia1, presente_dia2 FROM inscricoes WHERE id = ?", id).Scan(&dia1, &dia2); err != nil {
		t.Fatalf("Failed to read flags: %v", err)
	}
	if !dia1 || dia2 {
		t.Errorf("Expected dia1 set and dia2 clear, got dia1=%v dia2=%v", dia1, dia2)
	}

	result, err := svc.CheckIn("52998224725", models.Dia2)
	if err != nil {
		t.Fatalf("Check-in dia2 failed: %v", err)
	}
	if result.Already {
		t.Error("Expected Already=false for dia2 after dia1 check-in")
	}

	if err := db.QueryRow("SELECT presente_dia1, presente_dia2 FROM inscricoes WHERE id = ?", id).Scan(&dia1, &dia2); err != nil {
		t.Fatalf("Failed to read flags: %v", err)
	}
	if !dia1 || !dia2 {
		t.Errorf("Expected both day flags set, got dia1=%v dia2=%v", dia1, dia2)
	}
}
