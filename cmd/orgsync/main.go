package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"orgsync/internal/config"
	"orgsync/internal/domain"
	"orgsync/internal/githubapi"
	"orgsync/internal/publisher"
	"orgsync/internal/service"
	"orgsync/internal/storage/postgres"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "orgsync",
		Short:         "Mirror a GitHub organization into Postgres",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (optional; the environment alone is enough)")

	root.AddCommand(
		newSyncCmd(&configPath, "issues", "Sync issues", domain.KindIssues),
		newSyncCmd(&configPath, "pulls", "Sync pull requests and reviews", domain.KindPulls),
		newSyncCmd(&configPath, "comments", "Sync issue comments", domain.KindComments),
		newSyncCmd(&configPath, "maintainers", "Scan and rank maintainer evidence", domain.KindMaintainers),
		newMigrateCmd(&configPath),
	)
	return root
}

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			db, err := sqlx.Connect("postgres", cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			if err := postgres.Initialize(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Println("schema ready")
			return nil
		},
	}
}

func newSyncCmd(configPath *string, use, short string, kind domain.SyncKind) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [org]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				os.Setenv("ORGSYNC_ORG", args[0])
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			logger := setupLogger(cfg.LogLevel)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				sig := <-sigCh
				logger.Info("received shutdown signal", "signal", sig)
				cancel()
			}()

			report, err := runSync(ctx, cfg, logger, kind)
			if err != nil {
				return err
			}
			printSummary(report)
			return nil
		},
	}
}

func runSync(ctx context.Context, cfg *config.Config, logger *slog.Logger, kind domain.SyncKind) (*domain.RunReport, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	source, err := githubapi.New(cfg.GitHub, cfg.Sync, logger)
	if err != nil {
		return nil, err
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rmq, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return nil, err
		}
		defer rmq.Close()
		pub = rmq
	}

	repos := postgres.NewRepositoryStore(db)
	users := postgres.NewUserStore(db)
	watermarks := postgres.NewSyncStateStore(db)

	org := cfg.GitHub.Org

	switch kind {
	case domain.KindIssues:
		syncer := service.NewIssueSyncer(source, repos, postgres.NewIssueStore(db), users, watermarks, pub, logger)
		return syncer.Sync(ctx, org)
	case domain.KindPulls:
		syncer := service.NewPullRequestSyncer(source, repos, postgres.NewPullRequestStore(db), users, watermarks,
			postgres.NewTransactionManager(db), pub, logger)
		return syncer.Sync(ctx, org)
	case domain.KindComments:
		syncer := service.NewCommentSyncer(source, repos, postgres.NewCommentStore(db), postgres.NewIssueStore(db),
			postgres.NewPullRequestStore(db), users, watermarks, pub, logger)
		return syncer.Sync(ctx, org)
	case domain.KindMaintainers:
		syncer := service.NewMaintainerSyncer(source, repos, postgres.NewMaintainerStore(db), users, watermarks, pub, logger)
		return syncer.Sync(ctx, org)
	}
	return nil, fmt.Errorf("unknown sync kind %q", kind)
}

func printSummary(report *domain.RunReport) {
	fmt.Printf("%s sync: %d repos processed, %d skipped, %d items synced, %d errors (%s)\n",
		report.Kind,
		report.ReposProcessed,
		report.ReposSkipped,
		report.ItemsSynced,
		len(report.Errors),
		report.Duration.Round(time.Millisecond),
	)
	for _, e := range report.Errors {
		fmt.Printf("  error: %v\n", e)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
