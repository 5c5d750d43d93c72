// Package server boots the application: configuration, log sinks, stores,
// payment clients and the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/controllers"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/repositories"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/routes"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/services"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/config"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/cache"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/database"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/logger"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/metrics"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/middleware"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/payment"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/reqid"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/router"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/session"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/storage"
)

const shutdownGrace = 10 * time.Second

// Start boots every subsystem and serves HTTP until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	var mongoSink *logger.MongoHandler
	if uri := config.LogMongoURI(); uri != "" {
		h, err := logger.NewMongoHandler(uri, "stark", "logs")
		if err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		} else {
			mongoSink = h
			logger.L = slog.New(logger.NewMultiHandler(logger.L.Handler(), h))
		}
	}
	if mongoSink != nil {
		defer mongoSink.Close()
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: connect database: %w", err)
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, cache disabled", "error", err)
	}
	storage.Connect()

	return serve(NewHandler())
}

// NewHandler assembles the full middleware chain and route table. Tests use
// it directly against httptest.
func NewHandler() http.Handler {
	return NewRouter().Handler()
}

// NewRouter builds the route table; the CLI uses it for route:list.
func NewRouter() *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions(config.FrontendOrigin())),
		session.Middleware(sessionStore(), session.DefaultOptions()),
	)

	products := repositories.NewProductRepository()
	categories := repositories.NewCategoryRepository()
	orders := repositories.NewOrderRepository()
	users := repositories.NewUserRepository()
	admins := repositories.NewAdminRepository()

	auth := services.NewAuthService(users, admins)
	payments := services.NewPaymentService(
		payment.NewCardProvider(payment.NewStripeClient(config.StripeSecretKey())),
		payment.NewUPIProvider(payment.NewRazorpayClient(config.RazorpayKeyID(), config.RazorpayKeySecret())),
		payment.NewCODProvider(orders),
	)

	routes.Register(r, &routes.Controllers{
		Products:   controllers.NewProductController(products),
		Categories: controllers.NewCategoryController(categories),
		Orders:     controllers.NewOrderController(orders),
		Auth:       controllers.NewAuthController(auth),
		Payments:   controllers.NewPaymentController(payments),
		Dashboard:  controllers.NewDashboardController(products),
		Uploads:    controllers.NewUploadController(),
	})

	return r
}

func sessionStore() session.Store {
	if config.SessionDriver() == "memory" {
		return session.NewMemoryStore()
	}
	return session.NewRedisStore()
}

func serve(handler http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
