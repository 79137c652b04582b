package webserver

import (
	"net/http"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/solwire/solana-swqos-relayer/internal/metrics"
	"github.com/solwire/solana-swqos-relayer/internal/swqos"
)

const MonitoringLoggerContext = "monitoring"

// PromWrapper refreshes storage-derived gauges before serving /metrics.
type PromWrapper struct {
	promHandler http.Handler
	storage     swqos.Storage
	logger      *zap.Logger
}

func NewPromWrapper(logRegistry *nlogger.Registry, storage swqos.Storage) PromWrapper {
	return PromWrapper{
		promHandler: promhttp.Handler(),
		storage:     storage,
		logger:      logRegistry.Get(MonitoringLoggerContext),
	}
}

func (p PromWrapper) fillUnsuccessfulTxsMetric() {
	txs, err := p.storage.GetAllUnsuccessfulTxs()
	if err != nil {
		p.logger.Error("failed to get unsuccessful txs from storage", zap.Error(err))
		return
	}
	metrics.SetUnsuccessfulTxsSizeQueue(len(txs))
}

func (p PromWrapper) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	p.fillUnsuccessfulTxsMetric()
	p.promHandler.ServeHTTP(res, req)
}
