package testutil

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/icrowley/fake"

	"github.com/techdigest/api/clients/storage"
	"github.com/techdigest/api/digest"
	"github.com/techdigest/api/handler"
	"github.com/techdigest/api/model"
)

// FrozenTime is the instant the test clock always reports. It sits mid-day
// UTC so "today" is unambiguous.
var FrozenTime = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// Clock is a fixed clock for tests.
func Clock() time.Time {
	return FrozenTime
}

// Today returns the DateKey the frozen clock resolves to.
func Today() model.DateKey {
	return model.Today(Clock)
}

// Handler wires the full HTTP handler around the given in-memory store and
// the frozen clock.
func Handler(store *storage.TestClient) http.Handler {
	fetcher := digest.New(&digest.Config{
		Storage: store,
		Clock:   Clock,
	})

	return handler.New(&handler.Config{
		Fetcher: fetcher,
	})
}

// SeedDigest stores a well-formed digest payload for the given date and
// returns the headlines in the order they were written.
func SeedDigest(store *storage.TestClient, date model.DateKey, n int) []string {
	titles := make([]string, n)
	pairs := make([]string, n)

	for i := 0; i < n; i++ {
		titles[i] = fmt.Sprintf("%s %d", fake.Company(), i)
		pairs[i] = fmt.Sprintf("%q: %q", titles[i], fake.Sentence())
	}

	payload := fmt.Sprintf(`{"timestamp": %d, "latest_news": {%s}}`,
		FrozenTime.Unix(), strings.Join(pairs, ", "))

	store.Put(date.Key(), []byte(payload))

	return titles
}
