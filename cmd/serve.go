// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/nexusdev/nexus-service/internal/authorization"
	"github.com/nexusdev/nexus-service/internal/config"
	"github.com/nexusdev/nexus-service/internal/db"
	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring/prometheus"
	"github.com/nexusdev/nexus-service/internal/openai"
	"github.com/nexusdev/nexus-service/internal/openfga"
	"github.com/nexusdev/nexus-service/internal/payments"
	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/pkg/ai"
	"github.com/nexusdev/nexus-service/pkg/authentication"
	"github.com/nexusdev/nexus-service/pkg/billing"
	"github.com/nexusdev/nexus-service/pkg/pricing"
	"github.com/nexusdev/nexus-service/pkg/projects"
	"github.com/nexusdev/nexus-service/pkg/tenant"
	"github.com/nexusdev/nexus-service/pkg/web"
	"github.com/nexusdev/nexus-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("nexus-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		authorizer = authorization.NewAuthorizer(
			ofga,
			tracer,
			monitor,
			logger,
		)
		logger.Info("Authorization is enabled")
		if authorizer.ValidateModel(context.Background()) != nil {
			panic("Invalid authorization model provided")
		}
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
		logger.Info("Using noop authorizer")
	}

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Using noop authenticator")
	}

	llmClient := openai.NewClient(
		openai.Config{
			APIKey:  specs.OpenAIAPIKey,
			BaseURL: specs.OpenAIBaseURL,
			Model:   specs.OpenAIModel,
		},
		tracer,
		monitor,
		logger,
	)

	paymentProvider := payments.NewStripeProvider(
		payments.Config{
			SecretKey:     specs.StripeSecretKey,
			WebhookSecret: specs.StripeWebhookSecret,
		},
		tracer,
		monitor,
		logger,
	)

	resolver := tenant.NewResolver(
		tenant.ResolverConfig{
			DefaultSlug:  specs.DefaultTenantSlug,
			FallbackID:   specs.FallbackTenantID,
			FallbackName: specs.FallbackTenantName,
		},
		s,
		tracer,
		monitor,
		logger,
	)

	tenantService := tenant.NewService(s, authorizer, tracer, monitor, logger)
	projectService := projects.NewService(s, llmClient, tracer, monitor, logger)
	aiService := ai.NewService(
		llmClient,
		ai.CacheConfig{MaxBytes: specs.SuggestionCacheBytes, TTL: specs.SuggestionCacheTTL},
		tracer,
		monitor,
		logger,
	)
	pricingService := pricing.NewService(s, tracer, monitor, logger)
	billingService := billing.NewService(s, paymentProvider, tracer, monitor, logger)
	registrationService := webhooks.NewService(tenantService, tracer, monitor, logger)

	router := web.NewRouter(
		s,
		dbClient,
		resolver,
		verifier,
		tenantService,
		projectService,
		aiService,
		pricingService,
		billingService,
		registrationService,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
