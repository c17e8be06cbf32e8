package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/optimus-events/event-registration/api"
	"github.com/optimus-events/event-registration/broker"
	"github.com/optimus-events/event-registration/dynamo"
	"github.com/optimus-events/event-registration/monitoring"
	"github.com/optimus-events/event-registration/razorpay"
	"github.com/optimus-events/event-registration/redisstore"
	"github.com/optimus-events/event-registration/registration"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"google.golang.org/api/idtoken"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the registration HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), loadConfig(), newLogger())
		},
	}
}

func serve(ctx context.Context, cfg Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to get aws config: %w", err)
	}

	db, err := createDB(ctx, awsCfg, cfg)
	if err != nil {
		return err
	}

	checkouts, err := createCheckoutStore(cfg, db)
	if err != nil {
		return err
	}

	secret, err := getRazorpaySecret(ctx, ssm.NewFromConfig(awsCfg), cfg)
	if err != nil {
		return err
	}
	gateway := razorpay.NewGateway(cfg.RazorpayKeyID, secret)
	if cfg.RazorpayKeyID == "" || secret == "" {
		logger.Warn(razorpay.MissingKeysMessage)
	}

	monitor := monitoring.NewMonitor()

	workflowOpts := []registration.WorkflowOption{
		registration.WithLogger(logger),
		registration.WithObserver(monitor),
		registration.WithNotifier(monitor),
		registration.WithNotifier(&registration.EmailNotifier{
			Sender:      createEmailSender(logger, cfg.Env, awsCfg),
			FromAddress: cfg.EmailFrom,
		}),
	}

	if cfg.NatsURL != "" {
		nc, err := broker.Connect(cfg.NatsURL)
		if err != nil {
			return err
		}
		defer nc.Drain()

		workflowOpts = append(workflowOpts, registration.WithNotifier(broker.NewPublisher(nc)))
	}

	workflow := registration.NewWorkflow(
		db,
		db,
		db,
		checkouts,
		api.ContextSessions{},
		gateway,
		registration.Options{
			CheckoutTTL:     cfg.CheckoutTTL,
			VerifySignature: cfg.VerifyPaymentSignature,
			MerchantName:    cfg.MerchantName,
		},
		workflowOpts...,
	)

	verifier, err := idtoken.NewValidator(ctx)
	if err != nil {
		return fmt.Errorf("failed to create google id token validator: %w", err)
	}

	eventAPI := api.NewAPI(db, db, db, workflow, gateway, verifier, monitor, logger, api.Config{
		Env:            cfg.Env,
		GoogleClientID: cfg.GoogleClientID,
		CookieDomain:   cfg.CookieDomain,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	apiHandler, err := eventAPI.Handler()
	if err != nil {
		return err
	}

	r := http.NewServeMux()
	r.Handle("GET /metrics", monitoring.Handler())
	r.Handle("/", apiHandler)

	s := &http.Server{
		Handler:           r,
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("addr", s.Addr))
		serveErr <- s.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

func createCheckoutStore(cfg Config, db *dynamo.DB) (registration.CheckoutStore, error) {
	switch cfg.CheckoutStore {
	case "dynamo":
		return db, nil
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		return redisstore.NewCheckoutStore(redis.NewClient(opts)), nil
	default:
		return nil, fmt.Errorf("unknown checkout store %q, expected dynamo or redis", cfg.CheckoutStore)
	}
}
