package jitosender

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/solwire/solana-swqos-relayer/internal/metrics"
	"github.com/solwire/solana-swqos-relayer/internal/swqos"
)

var (
	submitMaxRetries     uint   = 3
	submitMinContextSlot uint64 = 0
)

// JitoSender submits transactions through a Jito block engine endpoint. The
// caller is expected to have attached a tip transfer to one of the configured
// tip accounts; building the transfer itself is out of this provider's hands.
// Confirmation is polled against a regular RPC node, not the block engine.
type JitoSender struct {
	blockEngine swqos.SolanaRPC
	confirmer   swqos.ConfirmationWaiter
	tipAccounts []string
	nextTip     atomic.Uint32
	logger      *zap.Logger
}

func NewJitoSender(
	blockEngine swqos.SolanaRPC,
	confirmer swqos.ConfirmationWaiter,
	tipAccounts []string,
	logger *zap.Logger,
) *JitoSender {
	return &JitoSender{
		blockEngine: blockEngine,
		confirmer:   confirmer,
		tipAccounts: tipAccounts,
		logger:      logger,
	}
}

func (s *JitoSender) SendTransaction(ctx context.Context, tradeType swqos.TradeType, tx *solana.Transaction, waitConfirmation bool) error {
	submitStart := time.Now()
	signature, err := s.blockEngine.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		Encoding:            solana.EncodingBase64,
		SkipPreflight:       true,
		PreflightCommitment: rpc.CommitmentProcessed,
		MaxRetries:          &submitMaxRetries,
		MinContextSlot:      &submitMinContextSlot,
	})
	if err != nil {
		metrics.AddFailedTxSubmit(string(swqos.SwqosTypeJito), time.Since(submitStart).Seconds())
		return fmt.Errorf("failed to send %s transaction to block engine: %w", tradeType, err)
	}
	metrics.AddSuccessTxSubmit(string(swqos.SwqosTypeJito), time.Since(submitStart).Seconds())

	if !waitConfirmation {
		return nil
	}

	confirmStart := time.Now()
	if err := s.confirmer.WaitForConfirmation(ctx, signature); err != nil {
		metrics.AddFailedConfirmation(string(swqos.SwqosTypeJito), time.Since(confirmStart).Seconds())
		s.logger.Error("transaction confirmation failed",
			zap.Stringer("signature", signature),
			zap.String("trade_type", string(tradeType)),
			zap.Duration("elapsed", time.Since(confirmStart)),
			zap.Error(err))
		swqos.DumpTransactionInstructions(s.logger, tx)
		return fmt.Errorf("failed to confirm %s transaction: %w", tradeType, err)
	}
	metrics.AddSuccessConfirmation(string(swqos.SwqosTypeJito), time.Since(confirmStart).Seconds())

	s.logger.Info("transaction confirmed",
		zap.Stringer("signature", signature),
		zap.String("trade_type", string(tradeType)),
		zap.Duration("elapsed", time.Since(confirmStart)))

	return nil
}

func (s *JitoSender) SendTransactions(ctx context.Context, tradeType swqos.TradeType, txs []*solana.Transaction, waitConfirmation bool) error {
	for _, tx := range txs {
		if err := s.SendTransaction(ctx, tradeType, tx, waitConfirmation); err != nil {
			return err
		}
	}

	return nil
}

// GetTipAccount returns one of the configured tip accounts, round-robin.
func (s *JitoSender) GetTipAccount() (string, error) {
	if len(s.tipAccounts) == 0 {
		return "", fmt.Errorf("no tip accounts configured")
	}

	next := s.nextTip.Add(1) - 1
	return s.tipAccounts[int(next)%len(s.tipAccounts)], nil
}

func (s *JitoSender) SwqosType() swqos.SwqosType {
	return swqos.SwqosTypeJito
}
