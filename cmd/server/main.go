package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/raven-go"

	"github.com/techdigest/api/clients/storage"
	"github.com/techdigest/api/config"
	"github.com/techdigest/api/digest"
	"github.com/techdigest/api/handler"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	raven.SetDSN(cfg.SentryDSN)
	raven.SetRelease(getenv("RELEASE", "dev"))

	var (
		storageClient = storage.NewClient(cfg.BucketURL)
		fetcher       = digest.New(&digest.Config{
			Storage: storageClient,
			Clock:   time.Now,
		})
	)

	h := handler.New(&handler.Config{
		Fetcher: fetcher,
	})

	srv := http.Server{Handler: h, Addr: fmt.Sprintf(":%s", cfg.Port)}

	idleConnsClosed := make(chan struct{})

	go func() {
		signalChan := make(chan os.Signal, 1)

		signal.Notify(signalChan, os.Interrupt)
		defer signal.Stop(signalChan)

		<-signalChan // first signal: clean up and exit gracefully
		log.Print("Signal detected, cleaning up")

		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}

		close(idleConnsClosed)
	}()

	log.Printf("Listening on port :%s", cfg.Port)

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Panicf("ListenAndServe: %v", err)
	}

	<-idleConnsClosed
}

func getenv(name, fallback string) string {
	if val, ok := os.LookupEnv(name); ok {
		return val
	}

	return fallback
}
