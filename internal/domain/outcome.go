package domain

import "encoding/json"

// RawResponse is an upstream reply before classification: the HTTP status and
// the body exactly as received. Non-2xx statuses are normal inputs here, not
// transport errors.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// Outcome is the classified result of one search attempt. Exactly one
// concrete kind is produced per response; consumers switch on the type and
// the compiler keeps the switch honest.
type Outcome interface {
	// Kind names the outcome for logs and metrics.
	Kind() string
	outcome()
}

// RateLimited reports an HTTP 429 from the upstream.
type RateLimited struct {
	Message string
}

// APIError reports a structured error envelope from the upstream.
type APIError struct {
	Code    string
	Message string
}

// NoMatch reports that the search ran but found nothing usable.
type NoMatch struct {
	Message string
}

// Malformed reports a body that was not JSON at all. Raw carries the body
// verbatim so the user sees exactly what the API said.
type Malformed struct {
	Raw string
}

// Success carries one or more ranked matches plus the optional explanation.
type Success struct {
	Matches     []Match
	Explanation string
}

// UnexpectedShape reports valid JSON that fits none of the known shapes.
// Message is set when the body carried a non-empty message field; otherwise
// Raw holds the body verbatim.
type UnexpectedShape struct {
	Message string
	Raw     string
}

func (RateLimited) Kind() string     { return "rate_limited" }
func (APIError) Kind() string        { return "api_error" }
func (NoMatch) Kind() string         { return "no_match" }
func (Malformed) Kind() string       { return "malformed" }
func (Success) Kind() string         { return "success" }
func (UnexpectedShape) Kind() string { return "unexpected_shape" }

func (RateLimited) outcome()     {}
func (APIError) outcome()        {}
func (NoMatch) outcome()         {}
func (Malformed) outcome()       {}
func (Success) outcome()         {}
func (UnexpectedShape) outcome() {}

// Match is one candidate item returned by the search API, ranked by
// relevance. Ranks are 1-based and not assumed contiguous or unique.
type Match struct {
	Rank           int          `json:"rank"`
	MatchedName    string       `json:"matched_name"`
	Metric         MetricAmount `json:"metric"`
	Year           FlexString   `json:"year,omitempty"`
	Geography      string       `json:"geography,omitempty"`
	Source         string       `json:"source,omitempty"`
	SourceLink     string       `json:"source_link,omitempty"`
	ConversionInfo string       `json:"conversion_info,omitempty"`
}

// MetricAmount is a metric value with its unit, e.g. 2.31 kgCO2e per kg.
type MetricAmount struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// FlexString is a string that also accepts JSON numbers (and anything else)
// when decoding. Upstream emits match years and error codes as either
// encoding depending on the data source.
type FlexString string

// UnmarshalJSON never fails: strings are unquoted, null becomes empty, and
// any other token is kept as its literal text.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = FlexString(data)
			return nil
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}
