package app

import (
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/solwire/solana-swqos-relayer/internal/config"
	"github.com/solwire/solana-swqos-relayer/internal/confirmer"
	"github.com/solwire/solana-swqos-relayer/internal/jitosender"
	"github.com/solwire/solana-swqos-relayer/internal/rpcsender"
	"github.com/solwire/solana-swqos-relayer/internal/storage"
	"github.com/solwire/solana-swqos-relayer/internal/swqos"
	"github.com/solwire/solana-swqos-relayer/internal/txtracker"
)

var (
	Version = ""
	Commit  = ""
)

const (
	AppContext        = "app"
	ConfirmerContext  = "confirmer"
	RPCSenderContext  = "rpc_sender"
	JitoSenderContext = "jito_sender"
	TxTrackerContext  = "tx_tracker"
)

func NewDefaultStorage(cfg config.SwqosRelayerConfig, logger *zap.Logger) (swqos.Storage, error) {
	if cfg.StoragePath == "" {
		logger.Info("RELAYER_STORAGE_PATH is empty, tx statuses are kept in memory only")
		return storage.NewDummyStorage(), nil
	}

	st, err := storage.NewLevelDBStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize levelDB storage: %w", err)
	}

	return st, nil
}

// NewDefaultSwqosClient builds the provider selected by cfg.Provider.
// Confirmation polling always goes through the regular RPC node, even for
// providers that submit elsewhere.
func NewDefaultSwqosClient(
	cfg config.SwqosRelayerConfig,
	logRegistry *nlogger.Registry,
	store swqos.Storage,
	pendingTxsQueue chan<- swqos.PendingSubmittedTxInfo,
) (swqos.Client, error) {
	rpcClient := rpc.New(cfg.RPCAddress)
	txConfirmer := confirmer.NewConfirmer(
		rpcClient,
		cfg.ConfirmationTimeout,
		cfg.ConfirmationPollInterval,
		logRegistry.Get(ConfirmerContext),
	)

	switch swqos.SwqosType(cfg.Provider) {
	case swqos.SwqosTypeDefault:
		return rpcsender.NewRPCSender(
			rpcClient,
			txConfirmer,
			store,
			pendingTxsQueue,
			logRegistry.Get(RPCSenderContext),
		), nil
	case swqos.SwqosTypeJito:
		return jitosender.NewJitoSender(
			rpc.New(cfg.JitoRPCAddress),
			txConfirmer,
			cfg.JitoTipAccounts,
			logRegistry.Get(JitoSenderContext),
		), nil
	default:
		return nil, fmt.Errorf("unknown swqos provider: %s", cfg.Provider)
	}
}

func NewDefaultTxTracker(cfg config.SwqosRelayerConfig, logRegistry *nlogger.Registry, store swqos.Storage) *txtracker.TxTracker {
	return txtracker.NewTxTracker(
		store,
		rpc.New(cfg.RPCAddress),
		logRegistry.Get(TxTrackerContext),
	)
}
