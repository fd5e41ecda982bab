package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults applied by Normalize when a parameter is missing or empty.
const (
	DefaultMetric     = "Carbon footprint"
	DefaultNumMatches = 1
	DefaultMode       = "lite"
)

// RawParams carries the nine custom-function arguments exactly as the add-on
// forwarded them. The sheet passes through whatever the user typed, so every
// field may be a string, a number, a boolean, or absent (nil).
type RawParams struct {
	ItemName   any
	Year       any
	Geography  any
	Metric     any
	Domain     any
	NumMatches any
	Mode       any
	NotEnglish any
	Unit       any
}

// QueryParameters is the normalized nine-tuple the pipeline operates on.
// It is the unit of cache-key derivation: two calls with equal
// QueryParameters are the same query.
type QueryParameters struct {
	ItemName   string
	Year       string
	Geography  string
	Metric     string
	Domain     string
	NumMatches int
	Mode       string
	NotEnglish bool
	Unit       string
}

// Normalize applies the documented defaults and casts. Mode is additionally
// lower-cased. Nothing is ever rejected here: out-of-range years, unknown
// metrics and oversized strings pass through unchanged because the remote API
// is the sole validator.
func (r RawParams) Normalize() QueryParameters {
	return QueryParameters{
		ItemName:   asString(r.ItemName, ""),
		Year:       asString(r.Year, ""),
		Geography:  asString(r.Geography, ""),
		Metric:     asString(r.Metric, DefaultMetric),
		Domain:     asString(r.Domain, ""),
		NumMatches: asInt(r.NumMatches, DefaultNumMatches),
		Mode:       strings.ToLower(asString(r.Mode, DefaultMode)),
		NotEnglish: asBool(r.NotEnglish),
		Unit:       asString(r.Unit, ""),
	}
}

// asString coerces v to a trimmed string, falling back to def when v is
// absent or trims to empty.
func asString(v any, def string) string {
	var s string
	switch t := v.(type) {
	case nil:
		return def
	case string:
		s = strings.TrimSpace(t)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case bool:
		s = strconv.FormatBool(t)
	default:
		s = strings.TrimSpace(fmt.Sprint(t))
	}
	if s == "" {
		return def
	}
	return s
}

// asInt coerces v to an int, falling back to def when v is absent or not
// numeric. A raw zero stays zero; the query builder later treats it as empty.
func asInt(v any, def int) int {
	switch t := v.(type) {
	case int:
		return t
	case float64:
		return int(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return def
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		// The sheet sometimes hands over "2.0" style numerics.
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
	}
	return def
}

// asBool is true only for the literal boolean true or the string "true";
// every other value, including "TRUE" and "yes", is false.
func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.TrimSpace(t) == "true"
	}
	return false
}
