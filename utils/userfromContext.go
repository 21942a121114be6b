package utils

import (
	"brookside/globals"
	"brookside/models"
	"net/http"
)

func GetUserIDFromRequest(r *http.Request) string {
	ctx := r.Context()
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

// GetUserFromRequest returns the user attached by the Authenticate gate,
// or nil on routes that never passed through it.
func GetUserFromRequest(r *http.Request) *models.User {
	u, ok := r.Context().Value(globals.UserKey).(*models.User)
	if !ok {
		return nil
	}
	return u
}
