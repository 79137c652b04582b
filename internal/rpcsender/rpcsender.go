package rpcsender

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/solwire/solana-swqos-relayer/internal/metrics"
	"github.com/solwire/solana-swqos-relayer/internal/swqos"
)

// Fixed submission options: the node performs up to submitMaxRetries rebroadcasts
// itself, preflight simulation is skipped for latency.
var (
	submitMaxRetries     uint   = 3
	submitMinContextSlot uint64 = 0
)

// RPCSender submits transactions through a plain Solana RPC endpoint. It is
// the default swqos provider: no relay in front of the node and no tip account.
type RPCSender struct {
	rpcClient swqos.SolanaRPC
	confirmer swqos.ConfirmationWaiter
	// storage and pendingTxsQueue are optional; when set, transactions
	// submitted without inline confirmation are handed to the tx tracker.
	storage         swqos.Storage
	pendingTxsQueue chan<- swqos.PendingSubmittedTxInfo
	logger          *zap.Logger
}

func NewRPCSender(
	rpcClient swqos.SolanaRPC,
	confirmer swqos.ConfirmationWaiter,
	storage swqos.Storage,
	pendingTxsQueue chan<- swqos.PendingSubmittedTxInfo,
	logger *zap.Logger,
) *RPCSender {
	return &RPCSender{
		rpcClient:       rpcClient,
		confirmer:       confirmer,
		storage:         storage,
		pendingTxsQueue: pendingTxsQueue,
		logger:          logger,
	}
}

// SendTransaction submits tx with skipped preflight, processed preflight
// commitment and up to 3 node-side retries. With waitConfirmation it blocks
// until the confirmer reports the transaction finalized; without it the call
// returns as soon as the node accepts the transaction.
func (s *RPCSender) SendTransaction(ctx context.Context, tradeType swqos.TradeType, tx *solana.Transaction, waitConfirmation bool) error {
	submitStart := time.Now()
	signature, err := s.rpcClient.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		Encoding:            solana.EncodingBase64,
		SkipPreflight:       true,
		PreflightCommitment: rpc.CommitmentProcessed,
		MaxRetries:          &submitMaxRetries,
		MinContextSlot:      &submitMinContextSlot,
	})
	if err != nil {
		metrics.AddFailedTxSubmit(string(swqos.SwqosTypeDefault), time.Since(submitStart).Seconds())
		s.recordSubmitFailure(tx, tradeType, err)
		return fmt.Errorf("failed to send %s transaction: %w", tradeType, err)
	}
	metrics.AddSuccessTxSubmit(string(swqos.SwqosTypeDefault), time.Since(submitStart).Seconds())

	if !waitConfirmation {
		s.trackPendingTx(ctx, signature, tradeType)
		return nil
	}

	confirmStart := time.Now()
	if err := s.confirmer.WaitForConfirmation(ctx, signature); err != nil {
		metrics.AddFailedConfirmation(string(swqos.SwqosTypeDefault), time.Since(confirmStart).Seconds())
		s.logger.Error("transaction confirmation failed",
			zap.Stringer("signature", signature),
			zap.String("trade_type", string(tradeType)),
			zap.Duration("elapsed", time.Since(confirmStart)),
			zap.Error(err))
		swqos.DumpTransactionInstructions(s.logger, tx)
		return fmt.Errorf("failed to confirm %s transaction: %w", tradeType, err)
	}
	metrics.AddSuccessConfirmation(string(swqos.SwqosTypeDefault), time.Since(confirmStart).Seconds())

	s.logger.Info("transaction confirmed",
		zap.Stringer("signature", signature),
		zap.String("trade_type", string(tradeType)),
		zap.Duration("elapsed", time.Since(confirmStart)))

	return nil
}

// SendTransactions sends each transaction in order. The first error aborts
// the batch without sending the remaining transactions.
func (s *RPCSender) SendTransactions(ctx context.Context, tradeType swqos.TradeType, txs []*solana.Transaction, waitConfirmation bool) error {
	for _, tx := range txs {
		if err := s.SendTransaction(ctx, tradeType, tx, waitConfirmation); err != nil {
			return err
		}
	}

	return nil
}

// GetTipAccount returns an empty string: the plain RPC provider has no
// tip account concept.
func (s *RPCSender) GetTipAccount() (string, error) {
	return "", nil
}

func (s *RPCSender) SwqosType() swqos.SwqosType {
	return swqos.SwqosTypeDefault
}

// trackPendingTx stores the Submitted status and notifies the tx tracker so
// the final status of a fire-and-forget submission still gets recorded. The
// stored status survives even if ctx closes before the queue accepts the
// notification: the startup backlog picks the tx up on the next run.
func (s *RPCSender) trackPendingTx(ctx context.Context, signature solana.Signature, tradeType swqos.TradeType) {
	if s.storage == nil {
		return
	}

	info := swqos.PendingSubmittedTxInfo{
		Signature:  signature.String(),
		TradeType:  tradeType,
		SubmitTime: time.Now(),
	}
	if err := s.storage.SetTxStatus(info, swqos.SubmittedTxInfo{Status: swqos.Submitted}); err != nil {
		s.logger.Error("failed to store submitted tx",
			zap.Stringer("signature", signature), zap.Error(err))
		return
	}

	if s.pendingTxsQueue != nil {
		go func() {
			select {
			case s.pendingTxsQueue <- info:
			case <-ctx.Done():
				s.logger.Warn("pending txs queue notification dropped, context closed",
					zap.Stringer("signature", signature))
			}
		}()
	}
}

// recordSubmitFailure stores the node's rejection so the unsuccessful txs
// endpoint reports it. The node returns no signature for a rejected tx, so
// the transaction's own first signature is the storage key.
func (s *RPCSender) recordSubmitFailure(tx *solana.Transaction, tradeType swqos.TradeType, sendErr error) {
	if s.storage == nil {
		return
	}

	var signature solana.Signature
	if len(tx.Signatures) > 0 {
		signature = tx.Signatures[0]
	}

	info := swqos.PendingSubmittedTxInfo{
		Signature:  signature.String(),
		TradeType:  tradeType,
		SubmitTime: time.Now(),
	}
	if err := s.storage.SetTxStatus(info, swqos.SubmittedTxInfo{
		Status:  swqos.ErrorOnSubmit,
		Message: sendErr.Error(),
	}); err != nil {
		s.logger.Error("failed to store rejected tx",
			zap.Stringer("signature", signature), zap.Error(err))
	}
}
