package txtracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/solwire/solana-swqos-relayer/internal/swqos"
)

var (
	retryAttempts = retry.Attempts(4)
	retryDelay    = retry.Delay(1 * time.Second)
	retryError    = retry.LastErrorOnly(false)
)

const statusCheckTimeout = 30 * time.Second

// errSignatureNotFound means the node does not know the signature: the tx was
// dropped before it reached a block. Transport errors are kept distinct so a
// tx is never marked unsuccessful just because the node was unreachable.
var errSignatureNotFound = errors.New("signature not found")

// TxTracker resolves the final status of transactions that were submitted
// without inline confirmation. It consumes pending tx infos from a queue,
// re-checks their signatures on chain and updates the storage.
type TxTracker struct {
	storage   swqos.Storage
	rpcClient swqos.SolanaRPC
	logger    *zap.Logger
}

func NewTxTracker(
	storage swqos.Storage,
	rpcClient swqos.SolanaRPC,
	logger *zap.Logger,
) *TxTracker {
	return &TxTracker{
		storage:   storage,
		rpcClient: rpcClient,
		logger:    logger,
	}
}

func (t *TxTracker) Run(ctx context.Context, pendingTxsQueue <-chan swqos.PendingSubmittedTxInfo) error {
	// Read and process all pending submitted transactions on startup.
	pending, err := t.storage.GetAllPendingTxs()
	if err != nil {
		return fmt.Errorf("failed to read pending txs from storage: %w", err)
	}

	for _, tx := range pending {
		if err := t.processPendingTx(ctx, *tx); err != nil {
			t.logger.Error("Failed to processPendingTx (on startup)",
				zap.Error(err), zap.String("signature", tx.Signature))
		}
	}

	for {
		select {
		case tx := <-pendingTxsQueue:
			if err := t.processPendingTx(ctx, tx); err != nil {
				t.logger.Error("Failed to processPendingTx",
					zap.Error(err), zap.String("signature", tx.Signature))
			}
		case <-ctx.Done():
			t.logger.Info("Context cancelled, shutting down TxTracker...")
			return nil
		}
	}
}

func (t *TxTracker) processPendingTx(ctx context.Context, tx swqos.PendingSubmittedTxInfo) error {
	signature, err := solana.SignatureFromBase58(tx.Signature)
	if err != nil {
		return fmt.Errorf("failed to parse signature: %w", err)
	}

	status, err := t.retryGetSignatureStatus(ctx, signature, statusCheckTimeout)
	if err != nil {
		if errors.Is(err, errSignatureNotFound) {
			t.updateTxStatus(tx, swqos.SubmittedTxInfo{
				Status:  swqos.ErrorOnCommit,
				Message: err.Error(),
			})
		}
		// Any other error keeps the tx in the Submitted status, so the
		// startup backlog re-checks it on the next run.
		return fmt.Errorf("failed to get signature status: %w", err)
	}

	if status.Err == nil {
		t.updateTxStatus(tx, swqos.SubmittedTxInfo{
			Status: swqos.Committed,
		})
	} else {
		t.updateTxStatus(tx, swqos.SubmittedTxInfo{
			Status:  swqos.ErrorOnCommit,
			Message: fmt.Sprintf("%v", status.Err),
		})
	}

	return nil
}

func (t *TxTracker) retryGetSignatureStatus(
	ctx context.Context,
	signature solana.Signature,
	timeout time.Duration,
) (*rpc.SignatureStatusesResult, error) {
	var result *rpc.SignatureStatusesResult

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := retry.Do(func() error {
		res, err := t.rpcClient.GetSignatureStatuses(timeoutCtx, true, signature)
		if err != nil {
			return err
		}
		if len(res.Value) == 0 || res.Value[0] == nil {
			return fmt.Errorf("%w: %s", errSignatureNotFound, signature)
		}
		if res.Value[0].Err == nil && res.Value[0].ConfirmationStatus != rpc.ConfirmationStatusFinalized {
			return fmt.Errorf("signature %s not finalized yet", signature)
		}
		result = res.Value[0]
		return nil
	}, retry.Context(timeoutCtx), retryAttempts, retryDelay, retryError); err != nil {
		return nil, err
	}

	return result, nil
}

func (t *TxTracker) updateTxStatus(tx swqos.PendingSubmittedTxInfo, status swqos.SubmittedTxInfo) {
	err := t.storage.SetTxStatus(tx, status)
	if err != nil {
		t.logger.Error(
			"failed to update tx status in storage",
			zap.String("signature", tx.Signature),
			zap.Error(err),
		)
	} else {
		t.logger.Info(
			"set tx status",
			zap.String("signature", tx.Signature),
			zap.String("status", string(status.Status)),
		)
	}
}
