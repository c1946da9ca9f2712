package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/techdigest/api/bjson"
	"github.com/techdigest/api/digest"
	"github.com/techdigest/api/handler/daily"
	"github.com/techdigest/api/handler/middleware"
)

type Config struct {
	Fetcher digest.Fetcher
}

func New(c *Config) http.Handler {
	router := mux.NewRouter()

	router.NotFoundHandler = http.HandlerFunc(notFound)

	s := router.NewRoute().Subrouter()
	s.PathPrefix("/digest").Handler(daily.NewHandler(&daily.Config{
		Fetcher: c.Fetcher,
	}))

	h := middleware.WithCORS(router)
	h = middleware.WithLogging(h)
	h = middleware.WithErrorReporting(h)

	return h
}

func notFound(w http.ResponseWriter, r *http.Request) {
	bjson.WriteJSON(w, map[string]string{"message": "Not found"}, http.StatusNotFound)
}
