package utils

import (
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParsePagination reads skip/limit from the query string, clamping the
// limit to maxLimit and falling back to defLimit.
func ParsePagination(r *http.Request, defLimit, maxLimit int64) (skip, limit int64) {
	q := r.URL.Query()

	limit = defLimit
	if l, err := strconv.ParseInt(q.Get("limit"), 10, 64); err == nil && l > 0 {
		limit = l
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if s, err := strconv.ParseInt(q.Get("skip"), 10, 64); err == nil && s > 0 {
		skip = s
	}
	return skip, limit
}

// ParseSort maps a sort query value to a Mongo sort document.
func ParseSort(param string, fallback bson.D) bson.D {
	switch param {
	case "price_asc":
		return bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "price", Value: -1}}
	case "name_asc":
		return bson.D{{Key: "name", Value: 1}}
	case "name_desc":
		return bson.D{{Key: "name", Value: -1}}
	case "newest":
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return fallback
}

// RegexFilter builds a case-insensitive substring match for field.
func RegexFilter(field, search string) bson.M {
	return bson.M{field: bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}}
}
