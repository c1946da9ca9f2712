package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techdigest/api/errors"
	"github.com/techdigest/api/model"
)

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		Name      string
		GivenRaw  string
		ExpectErr bool
	}{
		{Name: "valid", GivenRaw: "2025-01-02", ExpectErr: false},
		{Name: "valid leap day", GivenRaw: "2024-02-29", ExpectErr: false},
		{Name: "leap day in non-leap year", GivenRaw: "2025-02-29", ExpectErr: true},
		{Name: "impossible month and day", GivenRaw: "2025-13-40", ExpectErr: true},
		{Name: "wrong order", GivenRaw: "01-01-2025", ExpectErr: true},
		{Name: "partial", GivenRaw: "2025-01", ExpectErr: true},
		{Name: "trailing garbage", GivenRaw: "2025-01-02x", ExpectErr: true},
		{Name: "empty", GivenRaw: "", ExpectErr: true},
		{Name: "not zero padded", GivenRaw: "2025-1-2", ExpectErr: true},
	}

	for _, tcase := range tests {
		t.Run(tcase.Name, func(t *testing.T) {
			d, err := model.ParseDateKey(tcase.GivenRaw)

			if tcase.ExpectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(errors.Validation, err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tcase.GivenRaw, d.String())
		})
	}
}

func TestDateKeyKey(t *testing.T) {
	d, err := model.ParseDateKey("2025-06-07")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-07/summary.json", d.Key())

	// Deterministic: same date, same key, and the key leads back to the date.
	again, err := model.ParseDateKey("2025-06-07")
	require.NoError(t, err)
	assert.Equal(t, d.Key(), again.Key())
}

func TestDateKeyArithmetic(t *testing.T) {
	tests := []struct {
		Name       string
		GivenDate  string
		ExpectPrev string
	}{
		{Name: "mid month", GivenDate: "2025-06-15", ExpectPrev: "2025-06-14"},
		{Name: "month boundary", GivenDate: "2025-03-01", ExpectPrev: "2025-02-28"},
		{Name: "leap month boundary", GivenDate: "2024-03-01", ExpectPrev: "2024-02-29"},
		{Name: "year boundary", GivenDate: "2025-01-01", ExpectPrev: "2024-12-31"},
	}

	for _, tcase := range tests {
		t.Run(tcase.Name, func(t *testing.T) {
			d, err := model.ParseDateKey(tcase.GivenDate)
			require.NoError(t, err)

			prev := d.Prev()
			assert.Equal(t, tcase.ExpectPrev, prev.String())

			// Round trips.
			assert.True(t, prev.Next().Equal(d))
			assert.True(t, d.Next().Prev().Equal(d))
		})
	}
}

func TestToday(t *testing.T) {
	clock := func() time.Time {
		// Just before midnight UTC on New Year's Eve.
		return time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
	}

	d := model.Today(clock)
	assert.Equal(t, "2024-12-31", d.String())
	assert.Equal(t, "2025-01-01", d.Next().String())

	// A non-UTC clock must not shift the date.
	est := time.FixedZone("EST", -5*60*60)
	clockEST := func() time.Time {
		return time.Date(2024, time.December, 31, 22, 0, 0, 0, est)
	}

	assert.Equal(t, "2025-01-01", model.Today(clockEST).String())
}

func TestDateKeyJSON(t *testing.T) {
	d, err := model.ParseDateKey("2025-04-05")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-04-05"`, string(b))

	var back model.DateKey
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d))

	assert.Error(t, json.Unmarshal([]byte(`"2025-13-40"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`20250405`), &back))
}
