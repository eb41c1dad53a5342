package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/asset-inventory/internal/metrics"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) {
	out, err := json.Marshal(data)
	if err != nil {
		log.Error("failed to encode response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		log.Warn("failed to write response")
	}
}

func parseIntPtr(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// referenceTime reads the optional ref query parameter (RFC 3339). Query
// strings turn '+' into a space, so an offset like +02:00 is restored first.
func referenceTime(q url.Values) (time.Time, error) {
	raw := strings.TrimSpace(q.Get("ref"))
	if raw == "" {
		return time.Now().UTC(), nil
	}
	raw = strings.ReplaceAll(raw, " ", "+")
	ref, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ref, expected RFC3339: %w", err)
	}
	return ref, nil
}

// fieldParam returns the field query parameter when it names an asset field.
func fieldParam(q url.Values) (string, error) {
	field := q.Get("field")
	if field == "" {
		return "", errors.New("field is required")
	}
	if !metrics.IsField(field) {
		return "", fmt.Errorf("unknown field %q", field)
	}
	return field, nil
}

// filterFromQuery reads the filter keys shared by search and export.
func filterFromQuery(q url.Values) metrics.Filter {
	return metrics.Filter{
		Location:   q.Get("location"),
		Department: q.Get("department"),
		Brand:      q.Get("brand"),
		Status:     q.Get("status"),
		SearchText: q.Get("q"),
	}
}
