package main

import (
	"context"
	"time"
)

// background runs fn on its own goroutine, recovering panics so a failed
// email or cleanup can never take the server down.
func (app *application) background(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				app.logger.Errorw("background task panic", "error", r)
			}
		}()
		fn()
	}()
}

// abandonExpiredCartsEveryHour frees expired carts so they stop blocking the
// one-open-cart-per-user constraint.
func (app *application) abandonExpiredCartsEveryHour() {
	app.background(func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		run := func() {
			n, err := app.store.Sales.Carts.MarkExpiredAsAbandoned(context.Background())
			if err != nil {
				app.logger.Errorw("error abandoning expired carts", "error", err)
				return
			}
			if n > 0 {
				app.logger.Infow("abandoned expired carts", "count", n)
			}
		}

		run()
		for range ticker.C {
			run()
		}
	})
}
