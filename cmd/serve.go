// Copyright 2026 Canonical Ltd.
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

	"github.com/weftworks/provisioning-service/internal/config"
	"github.com/weftworks/provisioning-service/internal/db"
	"github.com/weftworks/provisioning-service/internal/hash"
	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/migrate"
	"github.com/weftworks/provisioning-service/internal/monitoring/prometheus"
	"github.com/weftworks/provisioning-service/internal/registry"
	"github.com/weftworks/provisioning-service/internal/storage"
	"github.com/weftworks/provisioning-service/internal/tenantdb"
	"github.com/weftworks/provisioning-service/internal/tracing"
	"github.com/weftworks/provisioning-service/pkg/provisioner"
	"github.com/weftworks/provisioning-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
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

	monitor := prometheus.NewMonitor("provisioning-service", logger)
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
	tenantStore := storage.NewTenantStorage(tracer, monitor, logger)
	schemaRegistry := registry.NewRegistry(dbClient, tracer, monitor, logger)

	director := tenantdb.NewDirector(specs.DSN, tracer, monitor, logger)
	defer director.Close()

	provisionerService := provisioner.NewService(
		dbClient,
		s,
		tenantStore,
		schemaRegistry,
		director,
		migrate.NewRunner(tracer, monitor, logger),
		hash.NewHasher(nil),
		tracer,
		monitor,
		logger,
	)

	router := web.NewRouter(
		provisionerService,
		specs.BaseHost,
		specs.ProvisionTimeout,
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

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
