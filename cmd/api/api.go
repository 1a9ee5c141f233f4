package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eightbitbar/docs" //required to generate swagger docs
	"eightbitbar/internal/auth"
	"eightbitbar/internal/domain/giftcards"
	"eightbitbar/internal/domain/storage"
	"eightbitbar/internal/mailer"
	"eightbitbar/internal/payments"
	"eightbitbar/internal/ratelimiter"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         *storage.Container
	logger        *zap.SugaredLogger
	cld           *cloudinary.Cloudinary
	mailer        mailer.Client
	authenticator auth.Authenticator
	paymentMgr    *payments.PaymentManager
	stripeGateway *payments.StripeAdapter
	giftCardCodes *giftcards.CodeGenerator
	rateLimiter   *ratelimiter.FixedWindowRateLimiter
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	mail        mailConfig
	frontendURL string
	auth        authConfig
	stripe      stripeConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret          string
	refreshSecret   string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	fromEmail string
	mailtrap  mailTrapConfig
}

type mailTrapConfig struct {
	apiKey string
}

type stripeConfig struct {
	secretKey     string
	webhookSecret string
}

type dbConfig struct {
	addr        string
	maxConns    int
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Request context timeout; handlers observe ctx.Done() through pgx.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		// Public routes
		r.Route("/authentication", func(r chi.Router) {
			r.Post("/user", app.registerUserHandler)
			r.Post("/token", app.createTokenHandler)
			r.Post("/refresh", app.refreshTokenHandler)
			r.Post("/reset-password", app.requestResetPasswordHandler)
			r.Patch("/reset-password", app.resetPasswordHandler)
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", app.listRoomsHandler)
			r.Get("/{roomID}", app.getRoomHandler)
			r.Get("/{roomID}/available-times", app.availableTimesHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/{roomID}/bookings", app.createBookingHandler)
			})
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/mine", app.myBookingsHandler)
			r.Patch("/{bookingID}/cancel", app.cancelBookingHandler)
		})

		r.Route("/gift-cards", func(r chi.Router) {
			r.Get("/{code}/balance", app.giftCardBalanceHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/", app.purchaseGiftCardHandler)
			})
		})

		r.Route("/store", func(r chi.Router) {
			r.Get("/products", app.listProductsHandler)
			r.Get("/products/{productID}", app.getProductHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Get("/cart", app.getCartHandler)
				r.Post("/cart/items", app.addCartItemHandler)
				r.Patch("/cart/items/{itemID}", app.updateCartItemHandler)
				r.Delete("/cart/items/{itemID}", app.removeCartItemHandler)
				r.Delete("/cart", app.clearCartHandler)
				r.Post("/checkout", app.checkoutHandler)
				r.Get("/orders", app.myOrdersHandler)
				r.Get("/orders/{orderID}", app.myOrderDetailHandler)
				r.Get("/orders/{orderID}/payment", app.orderPaymentStatusHandler)
			})
		})

		// Gateway webhooks authenticate themselves by signature.
		r.Post("/payments/webhooks/stripe", app.stripeWebhookHandler)

		// Staff back office
		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.RequireStaff)

			r.Get("/dashboard", app.adminDashboardHandler)

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", app.dayBookingsHandler)
				r.Post("/", app.staffBookingHandler)
				r.Patch("/{bookingID}/status", app.updateBookingStatusHandler)
				r.Patch("/{bookingID}/paid", app.markBookingPaidHandler)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", app.adminOrdersHandler)
				r.Get("/{orderID}", app.adminOrderDetailHandler)
				r.Patch("/{orderID}/status", app.updateOrderStatusHandler)
				r.Patch("/{orderID}/paid", app.markOrderPaidHandler)
			})

			r.Post("/gift-cards/redeem", app.redeemGiftCardHandler)

			// Admin-only management
			r.Group(func(r chi.Router) {
				r.Use(app.RequireAdmin)

				r.Route("/rooms", func(r chi.Router) {
					r.Post("/", app.createRoomHandler)
					r.Patch("/{roomID}", app.updateRoomHandler)
					r.Patch("/{roomID}/active", app.setRoomActiveHandler)
					r.Post("/{roomID}/photos", app.uploadRoomPhotoHandler)
					r.Delete("/{roomID}/photos", app.deleteRoomPhotoHandler)
					r.Put("/{roomID}/availability", app.replaceAvailabilityHandler)
				})

				r.Route("/products", func(r chi.Router) {
					r.Post("/", app.createProductHandler)
					r.Patch("/{productID}", app.updateProductHandler)
					r.Patch("/{productID}/active", app.setProductActiveHandler)
				})

				r.Route("/gift-cards", func(r chi.Router) {
					r.Get("/", app.adminGiftCardsHandler)
					r.Get("/{cardID}/redemptions", app.giftCardRedemptionsHandler)
					r.Patch("/{cardID}/void", app.voidGiftCardHandler)
				})

				r.Get("/payments", app.adminPaymentsHandler)
				r.Get("/payments/{paymentID}", app.adminPaymentDetailHandler)
				r.Patch("/users/{userID}/role", app.updateUserRoleHandler)
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
