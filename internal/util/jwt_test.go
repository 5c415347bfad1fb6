package util

import (
	"lms_backend/internal/model"
	"testing"
	"time"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(42, model.Teacher, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims.UserID != 42 || claims.Role != model.Teacher {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, model.Student, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if _, err := ParseJWT(token, "other"); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestParseJWTRejectsExpired(t *testing.T) {
	token, err := GenerateJWT(1, model.Student, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestParseJWTRejectsMissingUser(t *testing.T) {
	token, err := GenerateJWT(0, model.Student, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatalf("expected error for token without user id")
	}
}
