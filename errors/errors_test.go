package errors_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techdigest/api/errors"
)

func TestKindMapping(t *testing.T) {
	tests := []struct {
		GivenKind    errors.Kind
		ExpectStatus int
		ExpectName   string
	}{
		{errors.Validation, http.StatusBadRequest, "validation"},
		{errors.NotFound, http.StatusNotFound, "not_found"},
		{errors.MalformedPayload, http.StatusInternalServerError, "malformed_payload"},
		{errors.StoreUnavailable, http.StatusInternalServerError, "store_unavailable"},
		{errors.MissingConfig, http.StatusInternalServerError, "missing_configuration"},
		{errors.Internal, http.StatusInternalServerError, "internal"},
	}

	for _, tcase := range tests {
		t.Run(tcase.ExpectName, func(t *testing.T) {
			err := errors.E(errors.Op("test.Op"), tcase.GivenKind, errors.Str("boom"))

			r, ok := err.(errors.ClientReporter)
			assert.True(t, ok)
			assert.Equal(t, tcase.ExpectStatus, r.StatusCode())
			assert.True(t, errors.Is(tcase.GivenKind, err))
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := errors.E(errors.Op("storage.GetObject"), errors.StoreUnavailable, errors.Str("boom"))
	outer := errors.E(errors.Op("digest.Fetch"), errors.KindOf(inner), inner)

	assert.True(t, errors.Is(errors.StoreUnavailable, outer))

	report := outer.(errors.ClientReporter).ClientReport()
	assert.Equal(t, "store_unavailable", report["kind"])
}

func TestUntypedErrorsAreInternal(t *testing.T) {
	assert.True(t, errors.Is(errors.Internal, errors.Str("plain")))
	assert.Equal(t, errors.Internal, errors.KindOf(errors.Str("plain")))
}
