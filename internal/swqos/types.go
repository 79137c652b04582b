package swqos

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// TradeType tags a submission in logs. It has no effect on how the
// transaction is sent.
type TradeType string

const (
	TradeTypeBuy    TradeType = "buy"
	TradeTypeSell   TradeType = "sell"
	TradeTypeCreate TradeType = "create"
)

// SwqosType identifies the provider strategy behind a Client.
type SwqosType string

const (
	// SwqosTypeDefault is the plain RPC provider without any tip or relay service.
	SwqosTypeDefault SwqosType = "default"
	// SwqosTypeJito submits through a Jito block engine endpoint and pays a tip.
	SwqosTypeJito SwqosType = "jito"
)

// Client is a single quality-of-service provider capable of submitting
// already-signed transactions to the Solana network. Implementations are
// selected by configuration, one type per provider strategy.
type Client interface {
	// SendTransaction submits tx and, if waitConfirmation is set, blocks until
	// the transaction is finalized, fails on chain or the confirmation helper
	// times out. The transaction is never mutated.
	SendTransaction(ctx context.Context, tradeType TradeType, tx *solana.Transaction, waitConfirmation bool) error
	// SendTransactions submits txs in order via SendTransaction. The first
	// error aborts the batch; remaining transactions are not sent.
	SendTransactions(ctx context.Context, tradeType TradeType, txs []*solana.Transaction, waitConfirmation bool) error
	// GetTipAccount returns the provider's tip account address, or an empty
	// string for providers without a tip concept.
	GetTipAccount() (string, error)
	// SwqosType returns the provider variant.
	SwqosType() SwqosType
}

// SolanaRPC is a minimal interface for the solana RPC client.
type SolanaRPC interface {
	SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

// ConfirmationWaiter polls a submitted signature until the transaction is
// finalized, failed on chain, or the waiter's timeout elapses. The signature
// must come from the same submission it is used to poll.
type ConfirmationWaiter interface {
	WaitForConfirmation(ctx context.Context, signature solana.Signature) error
}

// SubmittedTxStatus is the status of a transaction the relayer has handed to
// an RPC node without waiting for confirmation inline.
type SubmittedTxStatus string

const (
	// Submitted means the RPC node accepted the transaction, but it has not
	// been seen in a finalized block yet.
	Submitted SubmittedTxStatus = "Submitted"
	// Committed means the transaction was finalized successfully.
	Committed SubmittedTxStatus = "Committed"
	// ErrorOnCommit means the transaction landed on chain with an error, or
	// was never finalized.
	ErrorOnCommit SubmittedTxStatus = "ErrorOnCommit"
	// ErrorOnSubmit means the RPC node rejected the transaction.
	ErrorOnSubmit SubmittedTxStatus = "ErrorOnSubmit"
)

// PendingSubmittedTxInfo identifies a submitted transaction whose final
// status is not known yet.
type PendingSubmittedTxInfo struct {
	// Signature is the base58 signature returned by the submission call.
	Signature string `json:"signature"`
	// TradeType is the tag the caller submitted the transaction with.
	TradeType TradeType `json:"trade_type"`
	// SubmitTime is when the transaction was handed to the RPC node.
	SubmitTime time.Time `json:"submit_time"`
}

// SubmittedTxInfo is a status transition for a submitted transaction.
type SubmittedTxInfo struct {
	Status SubmittedTxStatus `json:"status"`
	// Message explains why the transaction ended up unsuccessful, if it did.
	Message string `json:"message,omitempty"`
}

// UnsuccessfulTxInfo describes a transaction that did not make it on chain.
type UnsuccessfulTxInfo struct {
	Signature  string            `json:"signature"`
	TradeType  TradeType         `json:"trade_type"`
	Status     SubmittedTxStatus `json:"status"`
	Message    string            `json:"message"`
	SubmitTime time.Time         `json:"submit_time"`
}

// Storage keeps track of submitted transactions between restarts.
type Storage interface {
	// GetAllPendingTxs returns txs in the Submitted status.
	GetAllPendingTxs() ([]*PendingSubmittedTxInfo, error)
	// GetAllUnsuccessfulTxs returns txs in the ErrorOnSubmit or ErrorOnCommit statuses.
	GetAllUnsuccessfulTxs() ([]UnsuccessfulTxInfo, error)
	// SetTxStatus applies a status transition for tx.
	SetTxStatus(tx PendingSubmittedTxInfo, status SubmittedTxInfo) error
	Close() error
}
