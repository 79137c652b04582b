package txtracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/solwire/solana-swqos-relayer/internal/storage"
	"github.com/solwire/solana-swqos-relayer/internal/swqos"
	swqos_mock "github.com/solwire/solana-swqos-relayer/testutil/mocks/swqos"
)

func finalizedStatus(txErr interface{}) *rpc.GetSignatureStatusesResult {
	return &rpc.GetSignatureStatusesResult{
		Value: []*rpc.SignatureStatusesResult{
			{
				ConfirmationStatus: rpc.ConfirmationStatusFinalized,
				Err:                txErr,
			},
		},
	}
}

func TestTxTrackerResolvesPendingTxOnStartup(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpcMock := swqos_mock.NewMockSolanaRPC(ctrl)
	st := storage.NewDummyStorage()

	signature := solana.Signature{42}
	info := swqos.PendingSubmittedTxInfo{
		Signature:  signature.String(),
		TradeType:  swqos.TradeTypeBuy,
		SubmitTime: time.Now(),
	}
	require.NoError(t, st.SetTxStatus(info, swqos.SubmittedTxInfo{Status: swqos.Submitted}))

	rpcMock.EXPECT().
		GetSignatureStatuses(gomock.Any(), true, signature).
		Return(finalizedStatus(nil), nil)

	tracker := NewTxTracker(st, rpcMock, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tracker.Run(ctx, make(chan swqos.PendingSubmittedTxInfo))
	}()

	require.Eventually(t, func() bool {
		pending, err := st.GetAllPendingTxs()
		return err == nil && len(pending) == 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	unsuccessful, err := st.GetAllUnsuccessfulTxs()
	require.NoError(t, err)
	assert.Empty(t, unsuccessful)
}

func TestTxTrackerMarksOnChainFailureUnsuccessful(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpcMock := swqos_mock.NewMockSolanaRPC(ctrl)
	st := storage.NewDummyStorage()

	signature := solana.Signature{43}
	info := swqos.PendingSubmittedTxInfo{
		Signature:  signature.String(),
		TradeType:  swqos.TradeTypeSell,
		SubmitTime: time.Now(),
	}
	require.NoError(t, st.SetTxStatus(info, swqos.SubmittedTxInfo{Status: swqos.Submitted}))

	rpcMock.EXPECT().
		GetSignatureStatuses(gomock.Any(), true, signature).
		Return(finalizedStatus(map[string]interface{}{"InstructionError": []interface{}{0, "Custom"}}), nil)

	tracker := NewTxTracker(st, rpcMock, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tracker.Run(ctx, make(chan swqos.PendingSubmittedTxInfo))
	}()

	require.Eventually(t, func() bool {
		unsuccessful, err := st.GetAllUnsuccessfulTxs()
		return err == nil && len(unsuccessful) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	unsuccessful, err := st.GetAllUnsuccessfulTxs()
	require.NoError(t, err)
	require.Len(t, unsuccessful, 1)
	assert.Equal(t, signature.String(), unsuccessful[0].Signature)
	assert.Equal(t, swqos.ErrorOnCommit, unsuccessful[0].Status)
	assert.NotEmpty(t, unsuccessful[0].Message)
}

// fastRetries shrinks the retry delay so failing-path tests don't sleep.
func fastRetries(t *testing.T) {
	t.Helper()

	prev := retryDelay
	retryDelay = retry.Delay(time.Millisecond)
	t.Cleanup(func() { retryDelay = prev })
}

func TestTxTrackerKeepsPendingTxOnTransportError(t *testing.T) {
	fastRetries(t)

	ctrl := gomock.NewController(t)
	rpcMock := swqos_mock.NewMockSolanaRPC(ctrl)
	st := storage.NewDummyStorage()

	signature := solana.Signature{45}
	info := swqos.PendingSubmittedTxInfo{
		Signature:  signature.String(),
		TradeType:  swqos.TradeTypeBuy,
		SubmitTime: time.Now(),
	}
	require.NoError(t, st.SetTxStatus(info, swqos.SubmittedTxInfo{Status: swqos.Submitted}))

	rpcMock.EXPECT().
		GetSignatureStatuses(gomock.Any(), true, signature).
		Return(nil, errors.New("connection refused")).
		Times(4)

	tracker := NewTxTracker(st, rpcMock, zap.NewNop())
	require.Error(t, tracker.processPendingTx(context.Background(), info))

	// the tx stays in Submitted so the next startup backlog re-checks it
	pending, err := st.GetAllPendingTxs()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, signature.String(), pending[0].Signature)

	unsuccessful, err := st.GetAllUnsuccessfulTxs()
	require.NoError(t, err)
	assert.Empty(t, unsuccessful)
}

func TestTxTrackerMarksDroppedTxUnsuccessful(t *testing.T) {
	fastRetries(t)

	ctrl := gomock.NewController(t)
	rpcMock := swqos_mock.NewMockSolanaRPC(ctrl)
	st := storage.NewDummyStorage()

	signature := solana.Signature{46}
	info := swqos.PendingSubmittedTxInfo{
		Signature:  signature.String(),
		TradeType:  swqos.TradeTypeSell,
		SubmitTime: time.Now(),
	}
	require.NoError(t, st.SetTxStatus(info, swqos.SubmittedTxInfo{Status: swqos.Submitted}))

	// the node answers but never saw the signature
	rpcMock.EXPECT().
		GetSignatureStatuses(gomock.Any(), true, signature).
		Return(&rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{nil}}, nil).
		Times(4)

	tracker := NewTxTracker(st, rpcMock, zap.NewNop())
	require.Error(t, tracker.processPendingTx(context.Background(), info))

	pending, err := st.GetAllPendingTxs()
	require.NoError(t, err)
	assert.Empty(t, pending)

	unsuccessful, err := st.GetAllUnsuccessfulTxs()
	require.NoError(t, err)
	require.Len(t, unsuccessful, 1)
	assert.Equal(t, signature.String(), unsuccessful[0].Signature)
	assert.Equal(t, swqos.ErrorOnCommit, unsuccessful[0].Status)
}

func TestTxTrackerProcessesQueuedTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpcMock := swqos_mock.NewMockSolanaRPC(ctrl)

	signature := solana.Signature{44}
	info := swqos.PendingSubmittedTxInfo{
		Signature:  signature.String(),
		TradeType:  swqos.TradeTypeBuy,
		SubmitTime: time.Now(),
	}

	statusChecked := make(chan struct{})
	rpcMock.EXPECT().
		GetSignatureStatuses(gomock.Any(), true, signature).
		DoAndReturn(func(context.Context, bool, ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
			close(statusChecked)
			return finalizedStatus(nil), nil
		})

	// the queue path only: the storage backlog is empty on startup
	tracker := NewTxTracker(storage.NewDummyStorage(), rpcMock, zap.NewNop())

	queue := make(chan swqos.PendingSubmittedTxInfo, 1)
	queue <- info

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tracker.Run(ctx, queue)
	}()

	select {
	case <-statusChecked:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the queued tx status to be checked")
	}

	cancel()
	require.NoError(t, <-done)
}
