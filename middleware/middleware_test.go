package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brookside/globals"
	"brookside/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

var testSecret = []byte("test_secret")

func signToken(t *testing.T, secret []byte, userID string) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func fakeResolver(users map[string]*models.User) UserResolver {
	return func(_ context.Context, userID string) (*models.User, error) {
		return users[userID], nil
	}
}

func runGate(handle httprouter.Handle, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handle(rec, req, nil)
	return rec
}

func okHandle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	gate := NewGate(testSecret, fakeResolver(nil))
	rec := runGate(gate.Authenticate(okHandle), "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateBadToken(t *testing.T) {
	gate := NewGate(testSecret, fakeResolver(nil))
	rec := runGate(gate.Authenticate(okHandle), "not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateWrongSecret(t *testing.T) {
	gate := NewGate(testSecret, fakeResolver(nil))
	token := signToken(t, []byte("other_secret"), "u1")
	rec := runGate(gate.Authenticate(okHandle), token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateDeletedUser(t *testing.T) {
	// valid token, but the user no longer exists
	gate := NewGate(testSecret, fakeResolver(map[string]*models.User{}))
	token := signToken(t, testSecret, "u-gone")
	rec := runGate(gate.Authenticate(okHandle), token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Not authorized" {
		t.Errorf("message = %q, want %q", body["message"], "Not authorized")
	}
}

func TestAuthenticateAttachesUser(t *testing.T) {
	user := &models.User{UserID: "u1", Name: "Amy"}
	gate := NewGate(testSecret, fakeResolver(map[string]*models.User{"u1": user}))

	var seen *models.User
	handle := gate.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		seen, _ = r.Context().Value(globals.UserKey).(*models.User)
		w.WriteHeader(http.StatusOK)
	})

	rec := runGate(handle, signToken(t, testSecret, "u1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen == nil || seen.UserID != "u1" {
		t.Errorf("context user = %+v, want u1", seen)
	}
}

func TestAdminOnlyForbidsRegularUser(t *testing.T) {
	user := &models.User{UserID: "u1", IsAdmin: false}
	gate := NewGate(testSecret, fakeResolver(map[string]*models.User{"u1": user}))

	rec := runGate(gate.Authenticate(gate.AdminOnly(okHandle)), signToken(t, testSecret, "u1"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	user := &models.User{UserID: "u1", IsAdmin: true}
	gate := NewGate(testSecret, fakeResolver(map[string]*models.User{"u1": user}))

	rec := runGate(gate.Authenticate(gate.AdminOnly(okHandle)), signToken(t, testSecret, "u1"))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
