package model

import (
	"regexp"
	"time"

	"github.com/techdigest/api/errors"
)

// nolint
var _dateKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const (
	_dateKeyLayout = "2006-01-02"
	_objectName    = "summary.json"
)

// DateKey is a UTC calendar date used as the partitioning unit for stored
// digests. The zero value is not valid; construct one with ParseDateKey or
// Today.
type DateKey struct {
	t time.Time
}

// ParseDateKey accepts only exact YYYY-MM-DD strings that name a real
// calendar date. It never attempts to correct malformed input.
func ParseDateKey(raw string) (DateKey, error) {
	op := errors.Opf("model.ParseDateKey(%q)", raw)

	if !_dateKeyRe.MatchString(raw) {
		return DateKey{}, errors.E(op, errors.Validation,
			errors.Str("malformed date"),
			map[string]string{"date": "Must be a date in YYYY-MM-DD form"})
	}

	t, err := time.Parse(_dateKeyLayout, raw)
	if err != nil {
		// Matches the pattern but is not a real date, e.g. 2025-13-40.
		return DateKey{}, errors.E(op, errors.Validation, err,
			map[string]string{"date": "Must be a valid calendar date"})
	}

	return DateKey{t: t.UTC()}, nil
}

// Today returns the current UTC date according to the given clock.
func Today(clock func() time.Time) DateKey {
	y, m, d := clock().UTC().Date()
	return DateKey{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String returns the canonical YYYY-MM-DD form.
func (d DateKey) String() string {
	return d.t.Format(_dateKeyLayout)
}

// Key returns the storage key of the digest for this date.
func (d DateKey) Key() string {
	return d.String() + "/" + _objectName
}

// Prev returns the previous UTC calendar day, rolling over month and year
// boundaries.
func (d DateKey) Prev() DateKey {
	return DateKey{t: d.t.AddDate(0, 0, -1)}
}

// Next returns the next UTC calendar day.
func (d DateKey) Next() DateKey {
	return DateKey{t: d.t.AddDate(0, 0, 1)}
}

// Equal reports whether two DateKeys name the same day.
func (d DateKey) Equal(other DateKey) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d is an earlier day than other.
func (d DateKey) Before(other DateKey) bool {
	return d.t.Before(other.t)
}

// MarshalJSON encodes the date as its canonical string.
func (d DateKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a canonical date string.
func (d *DateKey) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.E(errors.Op("model.DateKey.UnmarshalJSON"), errors.Validation,
			errors.Str("date is not a JSON string"))
	}

	parsed, err := ParseDateKey(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
