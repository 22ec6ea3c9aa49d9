package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/domain/query"
)

// Accepted layouts for deadline values, tried in order. Zone-less layouts
// are interpreted in the server's local time zone.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDateTime parses a deadline in one of dateTimeLayouts.
func parseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var err error
	for _, layout := range dateTimeLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// getPathID extracts an integer task ID from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed ID if valid
//   - (0, error): A validation error if the parameter is missing or not an integer
func getPathID(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.Atoi(pathParam)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "must be an integer", domain.ErrInvalidID)
	}

	return id, nil
}

// getPathBool extracts a boolean from the URL path parameters.
func getPathBool(r *http.Request, paramName string) (bool, error) {
	v, err := strconv.ParseBool(chi.URLParam(r, paramName))
	if err != nil {
		return false, domain.NewValidationError(paramName, "must be true or false", domain.ErrInvalidFormat)
	}
	return v, nil
}

// getPathInt extracts an integer from the URL path parameters.
func getPathInt(r *http.Request, paramName string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, paramName))
	if err != nil {
		return 0, domain.NewValidationError(paramName, "must be an integer", domain.ErrInvalidFormat)
	}
	return v, nil
}

// queryValue returns the first non-blank value of key, or "".
func queryValue(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

// parseFilterCriteria builds query.Criteria from the filter endpoint's query
// string. Absent or blank parameters leave the matching criterion unset.
// Tags may be given as repeated tags or tags[] parameters.
func parseFilterCriteria(values url.Values) (query.Criteria, error) {
	var c query.Criteria

	if raw := queryValue(values, "isCompleted"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c, domain.NewValidationError("isCompleted", "must be true or false", domain.ErrInvalidFormat)
		}
		c.IsCompleted = &v
	}

	if raw := queryValue(values, "priority"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c, domain.NewValidationError("priority", "must be an integer", domain.ErrInvalidFormat)
		}
		c.Priority = &v
	}

	if raw := queryValue(values, "deadline"); raw != "" {
		v, err := parseDateTime(raw)
		if err != nil {
			return c, domain.NewValidationError("deadline",
				"must be an RFC 3339 timestamp or a YYYY-MM-DD date", domain.ErrInvalidFormat)
		}
		c.Deadline = &v
	}

	for _, key := range []string{"tags", "tags[]"} {
		for _, tag := range values[key] {
			if tag != "" {
				c.Tags = append(c.Tags, tag)
			}
		}
	}

	return c, nil
}
