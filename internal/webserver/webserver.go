package webserver

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gorilla/mux"
	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/solwire/solana-swqos-relayer/internal/swqos"
)

const ServerContext = "webserver"

const (
	SubmitResource          = "/submit"
	UnsuccessfulTxsResource = "/unsuccessful_txs"
)

// SubmitTxRequest is the payload for the submit endpoint. Transaction carries
// a fully signed transaction, base64 encoded.
type SubmitTxRequest struct {
	Transaction      string          `json:"transaction"`
	TradeType        swqos.TradeType `json:"trade_type"`
	WaitConfirmation bool            `json:"wait_confirmation"`
}

type SubmitTxResponse struct {
	Result string `json:"result"`
}

func Router(logRegistry *nlogger.Registry, client swqos.Client, store swqos.Storage) *mux.Router {
	logger := logRegistry.Get(ServerContext)
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc(SubmitResource, submitTx(client, logger)).Methods(http.MethodPost)
	router.HandleFunc(UnsuccessfulTxsResource, unsuccessfulTxs(store, logger)).Methods(http.MethodGet)
	return router
}

func submitTx(client swqos.Client, logger *zap.Logger) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitTxRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "failed to decode request body", http.StatusBadRequest)
			return
		}

		rawTx, err := base64.StdEncoding.DecodeString(req.Transaction)
		if err != nil {
			http.Error(w, "transaction is not valid base64", http.StatusBadRequest)
			return
		}

		tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(rawTx))
		if err != nil {
			http.Error(w, "failed to deserialize transaction", http.StatusBadRequest)
			return
		}

		if err := client.SendTransaction(r.Context(), req.TradeType, tx, req.WaitConfirmation); err != nil {
			logger.Error("failed to send transaction",
				zap.String("trade_type", string(req.TradeType)), zap.Error(err))
			http.Error(w, "failed to send transaction", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(SubmitTxResponse{Result: "submitted"}); err != nil {
			logger.Error("failed to encode submit response", zap.Error(err))
		}
	}
}

func unsuccessfulTxs(store swqos.Storage, logger *zap.Logger) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		txs, err := store.GetAllUnsuccessfulTxs()
		if err != nil {
			logger.Error("failed to get unsuccessful txs from storage", zap.Error(err))
			http.Error(w, "failed to read unsuccessful txs", http.StatusInternalServerError)
			return
		}

		if txs == nil {
			txs = make([]swqos.UnsuccessfulTxInfo, 0)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(txs); err != nil {
			logger.Error("failed to encode unsuccessful txs response", zap.Error(err))
		}
	}
}
