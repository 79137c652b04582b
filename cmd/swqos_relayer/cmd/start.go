package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solwire/solana-swqos-relayer/internal/app"
	"github.com/solwire/solana-swqos-relayer/internal/config"
	"github.com/solwire/solana-swqos-relayer/internal/swqos"
	"github.com/solwire/solana-swqos-relayer/internal/webserver"
)

const (
	mainContext = "main"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the swqos relayer main app",
	Run: func(cmd *cobra.Command, args []string) {
		startRelayer()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func startRelayer() {
	logRegistry, err := nlogger.NewRegistry(
		mainContext,
		app.AppContext,
		app.ConfirmerContext,
		app.RPCSenderContext,
		app.JitoSenderContext,
		app.TxTrackerContext,
		webserver.ServerContext,
		webserver.MonitoringLoggerContext,
	)
	if err != nil {
		log.Fatalf("couldn't initialize loggers registry: %s", err)
	}
	logger := logRegistry.Get(mainContext)
	logger.Info("solana-swqos-relayer starts...")

	cfg, err := config.NewSwqosRelayerConfig()
	if err != nil {
		logger.Fatal("cannot initialize relayer config", zap.Error(err))
	}

	// The storage has to be shared because of the LevelDB single process restriction.
	st, err := app.NewDefaultStorage(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create NewDefaultStorage", zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close storage", zap.Error(err))
		}
	}()

	http.Handle("/metrics", webserver.NewPromWrapper(logRegistry, st))
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.PrometheusPort), nil)
		if err != nil {
			logger.Fatal("failed to serve metrics", zap.Error(err))
		}
	}()
	logger.Info("metrics handler set up")

	pendingTxsQueue := make(chan swqos.PendingSubmittedTxInfo, cfg.PendingTxsQueueCapacity)

	client, err := app.NewDefaultSwqosClient(cfg, logRegistry, st, pendingTxsQueue)
	if err != nil {
		logger.Fatal("failed to create NewDefaultSwqosClient", zap.Error(err))
	}
	logger.Info("swqos client set up", zap.String("provider", string(client.SwqosType())))

	go func() {
		router := webserver.Router(logRegistry, client, st)
		err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.WebserverPort), router)
		if err != nil {
			logger.Fatal("failed to serve webserver", zap.Error(err))
		}
	}()
	logger.Info("rest webserver set up")

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	txTracker := app.NewDefaultTxTracker(cfg, logRegistry, st)

	wg.Add(1)
	go func() {
		defer wg.Done()

		// The tracker reads from the pending txs queue.
		if err := txTracker.Run(ctx, pendingTxsQueue); err != nil {
			logger.Error("TxTracker exited with an error", zap.Error(err))
			cancel()
		}
	}()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		s := <-sigs
		logger.Info("Received termination signal, gracefully shutting down...",
			zap.String("signal", s.String()))
		cancel()
	}()

	wg.Wait()
}
