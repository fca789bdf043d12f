package backend

import (
	"math"
	"strconv"

	pkghttp "insight-srv/pkg/http"
)

// Config holds configuration for the backend client.
type Config struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// Company is a company as listed by the backend.
type Company struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Sentiment holds raw sentiment counts.
type Sentiment struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns the sum of all counts.
func (s Sentiment) Total() int {
	return s.Positive + s.Neutral + s.Negative
}

// Keyword is a keyword and its occurrence count.
type Keyword struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// RawMention is a platform-specific mention object. Field names vary by platform.
type RawMention map[string]any

// String returns the value at key if it is a non-empty string. Numbers are formatted.
func (m RawMention) String(key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// Int returns the value at key as a non-negative integer, or 0.
func (m RawMention) Int(key string) int {
	var f float64
	switch v := m[key].(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if f <= 0 || math.IsNaN(f) {
		return 0
	}
	return int(f)
}

// Strings returns the string elements of the list at key.
func (m RawMention) Strings(key string) []string {
	list, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// backendImpl implements IBackend.
type backendImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
