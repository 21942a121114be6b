package auth

import (
	"testing"
	"time"

	"brookside/middleware"
	"brookside/models"

	"github.com/golang-jwt/jwt/v5"
)

func testUser() *models.User {
	return &models.User{UserID: "u123", Email: "amy@example.com", Name: "Amy"}
}

func TestMakeTokenRoundTrip(t *testing.T) {
	secret := []byte("test_secret")

	token, err := MakeToken(secret, testUser())
	if err != nil {
		t.Fatalf("MakeToken: %v", err)
	}

	claims, err := middleware.ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "u123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "u123")
	}
	if claims.Email != "amy@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "amy@example.com")
	}
}

func TestMakeTokenExpiry(t *testing.T) {
	token, err := MakeToken([]byte("test_secret"), testUser())
	if err != nil {
		t.Fatalf("MakeToken: %v", err)
	}

	claims, err := middleware.ParseToken([]byte("test_secret"), token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != tokenTTL {
		t.Errorf("ttl = %v, want %v", ttl, tokenTTL)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := MakeToken([]byte("right_secret"), testUser())
	if err != nil {
		t.Fatalf("MakeToken: %v", err)
	}

	if _, err := middleware.ParseToken([]byte("wrong_secret"), token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	secret := []byte("test_secret")
	claims := &middleware.Claims{
		UserID: "u123",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := middleware.ParseToken(secret, token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
