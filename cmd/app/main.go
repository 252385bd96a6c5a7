package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/admin"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/config"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/db"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/logger"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/proto"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/service"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/transport"
)

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "holonet",
		Short:         "Star Wars catalog and favorites backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, HOLONET_* env vars take precedence")

	root.AddCommand(newServeCmd(), newMigrateCmd(), newRoutesCmd())
	return root
}

func configOption() fx.Option {
	if cfgFile == "" {
		return config.Module
	}
	return fx.Provide(func() (*config.Config, error) {
		return config.Load(cfgFile)
	})
}

func serveOptions() []fx.Option {
	return []fx.Option{
		configOption(),
		logger.Module,
		db.Module,
		service.Module,
		admin.Module,
		transport.Module,
		proto.Module,
		fx.Invoke(func(*transport.HTTPServer, *proto.HolonetServerImpl) {}),
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and gRPC servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := fx.New(serveOptions()...)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

// migrateOptions runs db.Migrate exactly once: the gorm client is built with
// AutoMigrate off and the invoke does the schema pass itself.
func migrateOptions() []fx.Option {
	return []fx.Option{
		configOption(),
		logger.Module,
		db.Module,
		fx.Decorate(func(cfg *config.Config) *config.Config {
			c := *cfg
			c.AutoMigrate = false
			return &c
		}),
		fx.Invoke(func(g *gorm.DB, l *zap.SugaredLogger) error {
			if err := db.Migrate(g); err != nil {
				return err
			}
			l.Info("Schema is up to date.")
			return nil
		}),
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := fx.New(migrateOptions()...)
			if err := app.Err(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Second*15)
			defer cancel()
			if err := app.Start(ctx); err != nil {
				return errors.Wrap(err, "start")
			}
			return app.Stop(ctx)
		},
	}
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the HTTP sitemap as json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := transport.New(nil, nil, nil, zap.NewNop().Sugar())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(models.SitemapResp{Routes: server.Routes()})
		},
	}
}
