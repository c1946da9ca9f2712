// Package daily exposes the daily digest over HTTP.
package daily

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/techdigest/api/bjson"
	"github.com/techdigest/api/digest"
	"github.com/techdigest/api/errors"
	"github.com/techdigest/api/model"
)

type Config struct {
	Fetcher digest.Fetcher
}

func NewHandler(c *Config) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/digest", c.GetDigest).Methods("GET")
	r.HandleFunc("/digest/dates", c.GetDates).Methods("GET")

	return r
}

type digestResponse struct {
	Date       *model.DateKey      `json:"date,omitempty"`
	CapturedAt int64               `json:"capturedAt,omitempty"`
	Empty      bool                `json:"empty,omitempty"`
	Entries    []model.DisplayItem `json:"entries"`
}

// GetDigest serves the digest for ?date=YYYY-MM-DD, or for today when no
// date is given. Only the dateless form is allowed to fall back one day; a
// caller who asked for a specific day gets exactly that day or an empty
// state.
func (c *Config) GetDigest(w http.ResponseWriter, r *http.Request) {
	op := errors.Op("daily.GetDigest")
	ctx := r.Context()

	var requested *model.DateKey

	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := model.ParseDateKey(raw)
		if err != nil {
			bjson.HandleError(w, errors.E(op, errors.Validation, err))
			return
		}

		requested = &d
	}

	d, ok, err := c.Fetcher.Fetch(ctx, requested, requested == nil)
	if err != nil {
		bjson.HandleError(w, errors.E(op, errors.KindOf(err), err))
		return
	}

	if !ok {
		// A legitimate "no digest for this date" outcome, rendered as an
		// empty state rather than an error page.
		bjson.WriteJSON(w, &digestResponse{
			Date:    requested,
			Empty:   true,
			Entries: []model.DisplayItem{},
		}, http.StatusOK)

		return
	}

	bjson.WriteJSON(w, &digestResponse{
		Date:       &d.Date,
		CapturedAt: d.CapturedAt,
		Entries:    d.DisplayList(),
	}, http.StatusOK)
}

// GetDates serves the list of days that have an ingested digest, newest
// first, for date navigation.
func (c *Config) GetDates(w http.ResponseWriter, r *http.Request) {
	op := errors.Op("daily.GetDates")

	dates, err := c.Fetcher.ListDates(r.Context())
	if err != nil {
		bjson.HandleError(w, errors.E(op, errors.KindOf(err), err))
		return
	}

	if dates == nil {
		dates = []model.DateKey{}
	}

	bjson.WriteJSON(w, map[string]interface{}{"dates": dates}, http.StatusOK)
}
