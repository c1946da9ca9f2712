package model

import (
	"time"

	"github.com/tidwall/gjson"

	"github.com/techdigest/api/errors"
)

// Digest is the record stored for one day by the upstream ingestion job.
// Once parsed it is never mutated; a different date means a new fetch.
type Digest struct {
	Date       DateKey `json:"date"`
	CapturedAt int64   `json:"capturedAt"`
	Entries    []Entry `json:"-"`
}

// Entry is a single headline and its summary. Entries keep the document
// order of the stored JSON object.
type Entry struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DisplayItem is an Entry with its 1-based position, ready for rendering.
type DisplayItem struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ParseDigest decodes the stored payload for the given date. The wire format
// is the ingestion job's output:
//
//	{"timestamp": <epoch seconds>, "latest_news": {<headline>: <summary|null>}}
//
// Headlines whose summary is null are dropped; the ingestion job stores null
// when it could not produce a usable summary for an entity.
func ParseDigest(date DateKey, raw []byte) (*Digest, error) {
	op := errors.Opf("model.ParseDigest(%s)", date)

	if !gjson.ValidBytes(raw) {
		return nil, errors.E(op, errors.MalformedPayload, errors.Str("payload is not valid JSON"))
	}

	parsed := gjson.ParseBytes(raw)

	ts := parsed.Get("timestamp")
	if ts.Type != gjson.Number {
		return nil, errors.E(op, errors.MalformedPayload, errors.Str("missing or non-numeric timestamp"))
	}

	news := parsed.Get("latest_news")
	if !news.IsObject() {
		return nil, errors.E(op, errors.MalformedPayload, errors.Str("missing latest_news object"))
	}

	d := &Digest{
		Date:       date,
		CapturedAt: int64(ts.Float()),
	}

	news.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Null {
			return true
		}

		d.Entries = append(d.Entries, Entry{Title: key.String(), Body: value.String()})

		return true
	})

	return d, nil
}

// CapturedTime returns the capture timestamp as a time in UTC.
func (d *Digest) CapturedTime() time.Time {
	return time.Unix(d.CapturedAt, 0).UTC()
}

// DisplayList enumerates the digest's entries in document order with 1-based
// indices. It is a pure transform; the digest is left untouched.
func (d *Digest) DisplayList() []DisplayItem {
	items := make([]DisplayItem, len(d.Entries))

	for i := range d.Entries {
		items[i] = DisplayItem{
			Index: i + 1,
			Title: d.Entries[i].Title,
			Body:  d.Entries[i].Body,
		}
	}

	return items
}
