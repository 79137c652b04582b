package confirmer

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/solwire/solana-swqos-relayer/internal/swqos"
)

const (
	DefaultTimeout      = 15 * time.Second
	DefaultPollInterval = 500 * time.Millisecond
)

var (
	// the polling loop is bounded by the timeout context, not an attempt count
	pollAttempts  = retry.Attempts(0)
	pollDelayType = retry.DelayType(retry.FixedDelay)
	pollError     = retry.LastErrorOnly(true)
)

// Confirmer is the confirmation helper shared by all swqos providers. It
// polls the signature status until the transaction is finalized, fails on
// chain, or the timeout elapses.
type Confirmer struct {
	rpcClient    swqos.SolanaRPC
	timeout      time.Duration
	pollInterval time.Duration
	logger       *zap.Logger
}

func NewConfirmer(rpcClient swqos.SolanaRPC, timeout, pollInterval time.Duration, logger *zap.Logger) *Confirmer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &Confirmer{
		rpcClient:    rpcClient,
		timeout:      timeout,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// WaitForConfirmation blocks until signature is finalized. An on-chain
// failure aborts the polling immediately; any other state is retried until
// the timeout.
func (c *Confirmer) WaitForConfirmation(ctx context.Context, signature solana.Signature) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := retry.Do(func() error {
		res, err := c.rpcClient.GetSignatureStatuses(timeoutCtx, true, signature)
		if err != nil {
			return fmt.Errorf("failed to get signature status: %w", err)
		}

		if len(res.Value) == 0 || res.Value[0] == nil {
			return fmt.Errorf("transaction not found yet")
		}

		status := res.Value[0]
		if status.Err != nil {
			return retry.Unrecoverable(fmt.Errorf("transaction failed on chain: %v", status.Err))
		}

		if status.ConfirmationStatus != rpc.ConfirmationStatusFinalized {
			c.logger.Debug("transaction not finalized yet",
				zap.Stringer("signature", signature),
				zap.String("confirmation_status", string(status.ConfirmationStatus)))
			return fmt.Errorf("transaction not finalized yet, status=%s", status.ConfirmationStatus)
		}

		return nil
	}, retry.Context(timeoutCtx), retry.Delay(c.pollInterval), pollAttempts, pollDelayType, pollError)
	if err != nil {
		return fmt.Errorf("confirmation of %s did not complete: %w", signature, err)
	}

	return nil
}
