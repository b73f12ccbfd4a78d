package entity

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// TopN is the requested number of shortlisted resumes. The form field is not
// validated, so an unparsable value is kept as invalid instead of being dropped.
type TopN struct {
	Value int
	Valid bool
}

// DefaultTopN is the value a fresh page starts with.
var DefaultTopN = TopN{Value: 1, Valid: true}

// ParseTopN follows parseInt semantics: leading whitespace is ignored and the
// longest leading run of digits (with optional sign) is used. Runs beyond the
// int range are clamped to math.MaxInt or math.MinInt.
func ParseTopN(raw string) TopN {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return TopN{}
	}

	// Atoi returns the clamped value alongside ErrRange.
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return TopN{}
	}
	return TopN{Value: n, Valid: true}
}

func (t TopN) String() string {
	if !t.Valid {
		return "NaN"
	}
	return strconv.Itoa(t.Value)
}

// MarshalJSON encodes an invalid value as null.
func (t TopN) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

func (t *TopN) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TopN{}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = TopN{Value: n, Valid: true}
	return nil
}
