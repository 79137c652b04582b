package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "RELAYER"

// SwqosRelayerConfig is the daemon configuration, read from RELAYER_* env vars.
type SwqosRelayerConfig struct {
	// RPCAddress is the regular Solana RPC node used for submission (default
	// provider), confirmation polling and status tracking.
	RPCAddress string `envconfig:"RPC_ADDRESS" default:"https://api.mainnet-beta.solana.com"`
	// Provider selects the swqos provider variant ("default" or "jito").
	Provider string `envconfig:"PROVIDER" default:"default"`

	JitoRPCAddress  string   `envconfig:"JITO_RPC_ADDRESS" default:"https://mainnet.block-engine.jito.wtf/api/v1"`
	JitoTipAccounts []string `envconfig:"JITO_TIP_ACCOUNTS"`

	ConfirmationTimeout      time.Duration `envconfig:"CONFIRMATION_TIMEOUT" default:"15s"`
	ConfirmationPollInterval time.Duration `envconfig:"CONFIRMATION_POLL_INTERVAL" default:"500ms"`

	// StoragePath enables the LevelDB status storage; empty means statuses
	// are kept in memory only.
	StoragePath             string `envconfig:"STORAGE_PATH"`
	PendingTxsQueueCapacity int    `envconfig:"PENDING_TXS_QUEUE_CAPACITY" default:"100"`

	WebserverPort  int `envconfig:"WEBSERVER_PORT" default:"9999"`
	PrometheusPort int `envconfig:"PROMETHEUS_PORT" default:"9090"`
}

func NewSwqosRelayerConfig() (SwqosRelayerConfig, error) {
	cfg := SwqosRelayerConfig{}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to init config: %w", err)
	}

	return cfg, nil
}
