package main

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/config"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/logger"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/middleware"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/repository"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/routes"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := logger.Setup(cfg.LogFile, cfg.LogLevel); err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			p, err := planner.New(store, planner.Config{MaxTripSchedules: cfg.MaxTripSchedules})
			if err != nil {
				return err
			}

			r := routes.SetupRouter(p, []byte(cfg.JWTSecret))
			handler := middleware.EnableCORS(r, cfg.CORSOrigins)

			addr := "0.0.0.0:" + cfg.Port
			logrus.WithFields(logrus.Fields{"addr": addr, "store": cfg.Store}).Info("server starting")
			fmt.Fprintf(cmd.OutOrStdout(), "Server running at %s\n", addr)
			return http.ListenAndServe(addr, handler)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides TRILO_PORT)")
	return cmd
}

func openStore(cfg config.Config) (planner.Store, error) {
	if cfg.Store == config.StoreMemory {
		logrus.Warn("using in-memory store, data is lost on exit")
		return repository.NewMemoryStore(), nil
	}
	db, err := config.InitDB(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(db); err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}
	return repository.NewGormStore(db), nil
}
