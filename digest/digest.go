// Package digest resolves a requested day to a stored digest, applying the
// single-fallback-day policy for implicit "today" requests.
package digest

import (
	"context"
	"sort"
	"time"

	"github.com/techdigest/api/clients/storage"
	"github.com/techdigest/api/errors"
	"github.com/techdigest/api/log"
	"github.com/techdigest/api/model"
)

type Fetcher interface {
	// Fetch returns the digest for the requested date, or for today when
	// requested is nil. ok is false when no digest exists for the resolved
	// date, which is a normal outcome, not an error.
	Fetch(ctx context.Context, requested *model.DateKey, allowFallback bool) (digest *model.Digest, ok bool, err error)
	// ListDates returns the days that have an ingested digest, newest first.
	ListDates(ctx context.Context) ([]model.DateKey, error)
}

type Config struct {
	Storage storage.Client
	// Clock supplies the current wall-clock time so tests can pin "today".
	Clock func() time.Time
}

type fetcherImpl struct {
	*Config
}

func New(c *Config) Fetcher {
	if c.Clock == nil {
		c.Clock = time.Now
	}

	return &fetcherImpl{Config: c}
}

func (f *fetcherImpl) Fetch(
	ctx context.Context, requested *model.DateKey, allowFallback bool,
) (*model.Digest, bool, error) {
	op := errors.Op("digest.Fetch")

	effective := model.Today(f.Clock)
	if requested != nil {
		effective = *requested
	}

	d, ok, err := f.fetchOne(ctx, effective)
	if err != nil {
		return nil, false, errors.E(op, errors.KindOf(err), err)
	}

	if ok {
		return d, true, nil
	}

	// A dateless request may land before today's ingestion has finished.
	// Fall back exactly one day; an explicitly requested date is exact and
	// never redirected.
	if allowFallback && requested == nil {
		prev := effective.Prev()

		log.Printf("digest.Fetch: no digest for %s yet, trying %s", effective, prev)

		d, ok, err = f.fetchOne(ctx, prev)
		if err != nil {
			return nil, false, errors.E(op, errors.KindOf(err), err)
		}

		return d, ok, nil
	}

	return nil, false, nil
}

// fetchOne retrieves and parses the digest for a single day. Absence is
// reported via ok, not err.
func (f *fetcherImpl) fetchOne(ctx context.Context, date model.DateKey) (*model.Digest, bool, error) {
	payload, err := f.Storage.GetObject(ctx, date.Key())
	if err != nil {
		if errors.Is(errors.NotFound, err) {
			return nil, false, nil
		}

		return nil, false, err
	}

	d, err := model.ParseDigest(date, payload)
	if err != nil {
		return nil, false, err
	}

	return d, true, nil
}

func (f *fetcherImpl) ListDates(ctx context.Context) ([]model.DateKey, error) {
	op := errors.Op("digest.ListDates")

	prefixes, err := f.Storage.ListPrefixes(ctx)
	if err != nil {
		return nil, errors.E(op, errors.StoreUnavailable, err)
	}

	var dates []model.DateKey

	for _, p := range prefixes {
		d, err := model.ParseDateKey(p)
		if err != nil {
			// The bucket also holds intermediate ingestion artifacts under
			// non-date prefixes. Skip anything that is not a day.
			continue
		}

		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[j].Before(dates[i])
	})

	return dates, nil
}
