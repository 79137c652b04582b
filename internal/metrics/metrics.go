package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelProvider = "provider"
	labelType     = "type"
	typeSuccess   = "success"
	typeFailed    = "failed"
)

var (
	submittedTxCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swqos_submitted_txs",
		Help: "The total number of submitted txs (counter)",
	}, []string{labelProvider, labelType})

	submitTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swqos_submit_time",
		Help:    "A histogram of tx submission duration",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
	}, []string{labelProvider, labelType})

	confirmationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swqos_confirmation_time",
		Help:    "A histogram of tx confirmation duration",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
	}, []string{labelProvider, labelType})

	unsuccessfulTxsQueueSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "swqos_unsuccessful_txs",
		Help: "The total number of unsuccessful txs in the storage",
	})
)

func AddSuccessTxSubmit(provider string, dur float64) {
	submittedTxCounter.With(prometheus.Labels{
		labelProvider: provider,
		labelType:     typeSuccess,
	}).Inc()
	submitTime.With(prometheus.Labels{
		labelProvider: provider,
		labelType:     typeSuccess,
	}).Observe(dur)
}

func AddFailedTxSubmit(provider string, dur float64) {
	submittedTxCounter.With(prometheus.Labels{
		labelProvider: provider,
		labelType:     typeFailed,
	}).Inc()
	submitTime.With(prometheus.Labels{
		labelProvider: provider,
		labelType:     typeFailed,
	}).Observe(dur)
}

func AddSuccessConfirmation(provider string, dur float64) {
	confirmationTime.With(prometheus.Labels{
		labelProvider: provider,
		labelType:     typeSuccess,
	}).Observe(dur)
}

func AddFailedConfirmation(provider string, dur float64) {
	confirmationTime.With(prometheus.Labels{
		labelProvider: provider,
		labelType:     typeFailed,
	}).Observe(dur)
}

func SetUnsuccessfulTxsSizeQueue(size int) {
	unsuccessfulTxsQueueSize.Set(float64(size))
}
