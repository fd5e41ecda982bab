package scope4

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/scope4/google-sheets/internal/domain"
)

// genericRateLimitMessage stands in when a 429 arrives without a readable
// error envelope.
const genericRateLimitMessage = "Too many requests. Please try again later."

// noMatchMarker is the substring the API puts in its message when the search
// ran fine but nothing in the database came close.
const noMatchMarker = "No good match was found"

// Classify maps one raw API response to exactly one Outcome. Checks run in
// order and the first hit wins: the 429 status is looked at before the body,
// unparseable bodies pass through verbatim, and only then are the known
// envelope shapes checked.
func Classify(resp *domain.RawResponse) domain.Outcome {
	body := resp.Body

	if resp.StatusCode == http.StatusTooManyRequests {
		return classifyRateLimited(body)
	}

	fields, ok := decodeObject(body)
	if !ok {
		if !json.Valid(body) {
			return domain.Malformed{Raw: string(body)}
		}
		// Valid JSON but not an object (array, string, number): none of the
		// known envelope shapes can apply.
		return domain.UnexpectedShape{Raw: string(body)}
	}

	if errField, present := fields["error"]; present && !isNull(errField) {
		var e struct {
			Code    domain.FlexString `json:"code"`
			Message string            `json:"message"`
		}
		// A half-formed error object still renders with whatever fields it
		// carried. An error value that is not an object at all is treated
		// like null and falls through, so the raw text stays visible instead
		// of an empty "API error:" cell.
		if json.Unmarshal(errField, &e) == nil {
			return domain.APIError{Code: string(e.Code), Message: e.Message}
		}
	}

	message := stringField(fields, "message")
	if strings.Contains(message, noMatchMarker) {
		return domain.NoMatch{Message: message}
	}

	if matchesRaw, present := fields["matches"]; present {
		var matches []domain.Match
		if err := json.Unmarshal(matchesRaw, &matches); err == nil && len(matches) > 0 {
			return domain.Success{
				Matches:     matches,
				Explanation: stringField(fields, "explanation"),
			}
		}
	}

	if message != "" {
		return domain.UnexpectedShape{Message: message}
	}
	return domain.UnexpectedShape{Raw: string(body)}
}

// classifyRateLimited digs a human-readable message out of a 429 body when
// one is there.
func classifyRateLimited(body []byte) domain.Outcome {
	if fields, ok := decodeObject(body); ok {
		if errField, present := fields["error"]; present {
			var e struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(errField, &e) == nil && e.Message != "" {
				return domain.RateLimited{Message: e.Message}
			}
		}
	}
	return domain.RateLimited{Message: genericRateLimitMessage}
}

func decodeObject(body []byte) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// stringField returns the named field when it holds a JSON string, and ""
// for anything else, including absence.
func stringField(fields map[string]json.RawMessage, name string) string {
	raw, present := fields[name]
	if !present {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
