package utils

import (
	"net/http/httptest"
	"testing"

	"jornada-backend/models"
)

func TestNormalizeCPF(t *testing.T) {
	cases := map[string]string{
		"529.982.247-25":   "52998224725",
		"52998224725":      "52998224725",
		" 529 982 247 25 ": "52998224725",
		"abc":              "",
	}
	for input, want := range cases {
		if got := NormalizeCPF(input); got != want {
			t.Errorf("NormalizeCPF(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatCPF(t *testing.T) {
	if got := FormatCPF("52998224725"); got != "529.982.247-25" {
		t.Errorf("FormatCPF = %q", got)
	}
	// Anything that is not 11 digits passes through untouched.
	if got := FormatCPF("123"); got != "123" {
		t.Errorf("FormatCPF short input = %q", got)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin2026")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !ComparePasswords(hash, []byte("admin2026")) {
		t.Error("Expected password to match its hash")
	}
	if ComparePasswords(hash, []byte("wrong")) {
		t.Error("Expected wrong password to fail")
	}
}

func TestAdminTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET", "test-secret")

	admin := models.Admin{ID: 7, Email: "admin@example.com"}
	token, err := GenerateAdminToken(admin)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	r := httptest.NewRequest("GET", "/api/admins", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	id, err := VerifyToken(r)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if id != 7 {
		t.Errorf("Expected admin id 7, got %d", id)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SECRET", "test-secret")

	r := httptest.NewRequest("GET", "/api/admins", nil)
	if _, err := VerifyToken(r); err == nil {
		t.Error("Expected error for missing header")
	}

	r.Header.Set("Authorization", "Bearer not-a-token")
	if _, err := VerifyToken(r); err == nil {
		t.Error("Expected error for malformed token")
	}
}
