package usecase

import (
	"fmt"

	"github.com/scope4/google-sheets/internal/domain"
)

// cellsPerMatch is the fixed width of one match's slice of the row: label,
// metric value, metric unit, year, geography, source, source link and
// conversion info.
const cellsPerMatch = 8

// FormatSuccessRow flattens matched results into one variable-width row.
// Ranks are looked up by value from 1 up to min(numMatches, len(matches)); a
// rank nothing claims is skipped, so the row simply comes out shorter. The
// explanation cell is always appended last, empty when the API sent none.
// numMatches arrives unvalidated, so a zero or negative request formats no
// matches at all.
func FormatSuccessRow(matches []domain.Match, explanation string, numMatches int) domain.Row {
	limit := numMatches
	if limit < 0 {
		limit = 0
	}
	if len(matches) < limit {
		limit = len(matches)
	}

	row := make(domain.Row, 0, limit*cellsPerMatch+1)
	for rank := 1; rank <= limit; rank++ {
		match, found := matchByRank(matches, rank)
		if !found {
			continue
		}
		row = append(row,
			fmt.Sprintf("Match %d: %s", rank, match.MatchedName),
			match.Metric.Value,
			match.Metric.Unit,
			string(match.Year),
			match.Geography,
			match.Source,
			match.SourceLink,
			match.ConversionInfo,
		)
	}
	return append(row, explanation)
}

// matchByRank finds the match claiming a rank. Matches arrive in no
// guaranteed order and ranks need not be contiguous.
func matchByRank(matches []domain.Match, rank int) (domain.Match, bool) {
	for _, m := range matches {
		if m.Rank == rank {
			return m, true
		}
	}
	return domain.Match{}, false
}

// RowForOutcome renders any classified outcome as a row: the flattened
// matches for a success, a single explanatory cell for everything else.
func RowForOutcome(outcome domain.Outcome, numMatches int) domain.Row {
	switch o := outcome.(type) {
	case domain.Success:
		return FormatSuccessRow(o.Matches, o.Explanation, numMatches)
	case domain.RateLimited:
		return domain.Row{"Rate limit exceeded: " + o.Message}
	case domain.APIError:
		if o.Code == "" {
			return domain.Row{"API error: " + o.Message}
		}
		return domain.Row{fmt.Sprintf("API error %s: %s", o.Code, o.Message)}
	case domain.NoMatch:
		return domain.Row{o.Message}
	case domain.Malformed:
		return domain.Row{o.Raw}
	case domain.UnexpectedShape:
		if o.Message != "" {
			return domain.Row{o.Message}
		}
		return domain.Row{o.Raw}
	default:
		// Outcome is sealed, so this arm is unreachable; a message cell is
		// still the only acceptable way out.
		return domain.Row{"Error: unrecognized API response."}
	}
}
