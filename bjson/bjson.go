// Package bjson is better json. It provides helpers for working with JSON in http handlers.
package bjson

import (
	"encoding/json"
	"net/http"

	"github.com/techdigest/api/errors"
	"github.com/techdigest/api/log"
)

// nolint
var encodedErrResp []byte = json.RawMessage(`{"message":"There was an internal server error while processing the request"}`)

// HandleError writes an appropriate error response to the given response
// writer. If the given error implements ClientReporter, then the values from
// ClientReport() and StatusCode() are written to the response. 5XX errors
// are additionally logged and alarmed; the report still carries the
// machine-readable error kind.
func HandleError(w http.ResponseWriter, e error) {
	if r, ok := e.(errors.ClientReporter); ok {
		code := r.StatusCode()
		if code >= http.StatusInternalServerError {
			log.Alarm(e)
		} else {
			log.Printf("Client Error: %v", e)
		}

		WriteJSON(w, r.ClientReport(), code)

		return
	}

	handleInternalServerError(w, e)
}

// WriteJSON writes the given interface to the response. If the interface
// cannot be marshaled, a 500 error is written instead.
func WriteJSON(w http.ResponseWriter, payload interface{}, status int) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		handleInternalServerError(w, errors.E(errors.Op("bjson.WriteJSON"), errors.Internal, err))
	} else {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(encoded)
	}
}

// handleInternalServerError writes the given error to stderr and returns a
// 500 response with a default message.
func handleInternalServerError(w http.ResponseWriter, e error) {
	log.Alarm(e)
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write(encodedErrResp)
}
