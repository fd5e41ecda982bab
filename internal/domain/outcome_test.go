package domain

import (
	"encoding/json"
	"testing"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "quoted string is unquoted", data: `"2019"`, want: "2019"},
		{name: "number keeps its literal text", data: `2021`, want: "2021"},
		{name: "fractional number keeps its literal text", data: `2021.5`, want: "2021.5"},
		{name: "null becomes empty", data: `null`, want: ""},
		{name: "boolean keeps its literal text", data: `true`, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			if err := json.Unmarshal([]byte(tt.data), &f); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v, want nil", tt.data, err)
			}
			if string(f) != tt.want {
				t.Errorf("FlexString = %q, want %q", f, tt.want)
			}
		})
	}
}

func TestMatch_DecodesMixedYearEncodings(t *testing.T) {
	data := `[
		{"rank": 1, "matched_name": "A", "metric": {"value": 1, "unit": "kg"}, "year": 2021},
		{"rank": 2, "matched_name": "B", "metric": {"value": 2, "unit": "kg"}, "year": "2019"},
		{"rank": 3, "matched_name": "C", "metric": {"value": 3, "unit": "kg"}}
	]`

	var matches []Match
	if err := json.Unmarshal([]byte(data), &matches); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	wantYears := []string{"2021", "2019", ""}
	for i, want := range wantYears {
		if got := string(matches[i].Year); got != want {
			t.Errorf("matches[%d].Year = %q, want %q", i, got, want)
		}
	}
}
