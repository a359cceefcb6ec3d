package utils_test

import (
	"testing"

	"nutritrack/utils"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()
	secret := []byte("test-secret")

	token, err := utils.GenerateJWT(secret, 42, "alice@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	userID, err := utils.ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := utils.GenerateJWT([]byte("right-secret"), 7, "bob@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := utils.ParseJWT([]byte("wrong-secret"), token); err == nil {
		t.Fatal("expected wrong secret to be rejected")
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	t.Parallel()
	if _, err := utils.ParseJWT([]byte("secret"), "not.a.token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := utils.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !utils.CheckPasswordHash("hunter2", hash) {
		t.Fatal("expected matching password to verify")
	}
	if utils.CheckPasswordHash("hunter3", hash) {
		t.Fatal("expected wrong password to fail")
	}
}
