package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"brookside/globals"
	"brookside/models"
	"brookside/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// UserResolver maps a token's user id back to a stored user. Returning
// (nil, nil) means the user no longer exists.
type UserResolver func(ctx context.Context, userID string) (*models.User, error)

// Gate holds the signing secret and user lookup for the access-control
// middleware. Constructed in main; tests inject a fake resolver.
type Gate struct {
	secret  []byte
	resolve UserResolver
}

func NewGate(secret []byte, resolve UserResolver) *Gate {
	return &Gate{secret: secret, resolve: resolve}
}

// Authenticate verifies the bearer token and attaches the resolved user
// to the request context. A valid token for a since-deleted user is
// still a 401.
func (g *Gate) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := g.parseBearer(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		user, err := g.resolve(r.Context(), claims.UserID)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserKey, user)
		ctx = context.WithValue(ctx, globals.UserIDKey, user.UserID)
		next(w, r.WithContext(ctx), ps)
	}
}

// AdminOnly must be composed after Authenticate.
func (g *Gate) AdminOnly(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		user, ok := r.Context().Value(globals.UserKey).(*models.User)
		if !ok || user == nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
			return
		}
		if !user.IsAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r, ps)
	}
}

func (g *Gate) parseBearer(r *http.Request) (*Claims, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, fmt.Errorf("missing bearer token")
	}
	return ParseToken(g.secret, strings.TrimPrefix(header, "Bearer "))
}

// ParseToken verifies an HS256 token and returns its claims.
func ParseToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
