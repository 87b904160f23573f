package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/vitrum-studio/vitrum-backend/pkg/errors"
)

// ParseQueryInt64 parses a required numeric query parameter.
func ParseQueryInt64(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").
			WithDetails(map[string]any{"field": key})
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").
			WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParseQueryBool reads a boolean flag; only the literal "true" switches it on.
func ParseQueryBool(r *http.Request, key string) bool {
	return strings.TrimSpace(r.URL.Query().Get(key)) == "true"
}
