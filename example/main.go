package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/legendum/ntil"
	"github.com/lmittmann/tint"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))

	fetch := func(args []any, next ntil.Next) {
		go func() {
			resp, err := http.Get(args[0].(string))
			if err != nil {
				next()
				return
			}
			resp.Body.Close()
			next(resp.StatusCode)
		}()
	}

	done := make(chan bool, 1)
	handler, err := ntil.New(
		func(results ...any) bool {
			return len(results) == 1 && results[0] == http.StatusOK
		},
		fetch,
		func(results ...any) { done <- true },
		func(results ...any) { done <- false },
		ntil.WithName("fetch"),
		ntil.WithLogger(ntil.NewSlogLogger(logger)),
		ntil.WithInitialWait(500*time.Millisecond),
		ntil.WithMaxAttempts(5),
	)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	handler("https://www.google.com")

	if <-done {
		logger.Info("request is successful")
	} else {
		logger.Error("request failed")
		os.Exit(1)
	}
}
