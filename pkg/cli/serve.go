package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/usher/pkg/cli/config"
	"github.com/m-mizutani/usher/pkg/controller/server"
	"github.com/m-mizutani/usher/pkg/infra"
	"github.com/m-mizutani/usher/pkg/infra/ghclient"
	"github.com/m-mizutani/usher/pkg/repository/memory"
	"github.com/m-mizutani/usher/pkg/usecase"
	"github.com/m-mizutani/usher/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		firestoreCfg config.Firestore
		storageCfg   config.Storage
		bigQueryCfg  config.BigQuery
		sendGridCfg  config.SendGrid
		sentryCfg    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("USHER_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			firestoreCfg.Flags(),
			storageCfg.Flags(),
			bigQueryCfg.Flags(),
			sendGridCfg.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Firestore", firestoreCfg),
				slog.Any("Storage", storageCfg),
				slog.Any("BigQuery", bigQueryCfg),
				slog.Any("SendGrid", sendGridCfg),
				slog.Any("Sentry", sentryCfg),
			)

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHub(ghclient.New()),
			}

			if firestoreCfg.Enabled() {
				repo, err := firestoreCfg.NewRepository(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithIntakeRepository(repo))
			} else {
				logging.Default().Warn("firestore is not configured, submissions are kept in memory")
				infraOptions = append(infraOptions, infra.WithIntakeRepository(memory.New()))
			}

			if storageClient, err := storageCfg.NewClient(ctx); err != nil {
				return err
			} else if storageClient != nil {
				infraOptions = append(infraOptions, infra.WithStorage(storageClient))
			}

			if bqClient, err := bigQueryCfg.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			var ucOptions []usecase.Option
			if notifier, err := sendGridCfg.NewClient(); err != nil {
				return err
			} else if notifier != nil {
				infraOptions = append(infraOptions, infra.WithNotifier(notifier))

				if opsAddr := sendGridCfg.OpsAddress(); opsAddr != "" {
					ucOptions = append(ucOptions, usecase.WithOpsAddress(opsAddr))
				}
				if id := sendGridCfg.TemplateID(); id != "" {
					ucOptions = append(ucOptions, usecase.WithIntakeTemplateID(id))
				}
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients, ucOptions...)
			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       120 * time.Second,
				WriteTimeout:      120 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
