package confirmer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	swqos_mock "github.com/solwire/solana-swqos-relayer/testutil/mocks/swqos"
)

func statusesResult(statuses ...*rpc.SignatureStatusesResult) *rpc.GetSignatureStatusesResult {
	return &rpc.GetSignatureStatusesResult{Value: statuses}
}

func TestWaitForConfirmationFinalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpcMock := swqos_mock.NewMockSolanaRPC(ctrl)
	signature := solana.Signature{1}

	rpcMock.EXPECT().
		GetSignatureStatuses(gomock.Any(), true, signature).
		Return(statusesResult(&rpc.SignatureStatusesResult{
			ConfirmationStatus: rpc.ConfirmationStatusFinalized,
		}), nil)

	c := NewConfirmer(rpcMock, time.Second, 10*time.Millisecond, zap.NewNop())
	require.NoError(t, c.WaitForConfirmation(context.Background(), signature))
}

func TestWaitForConfirmationEventuallyFinalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpcMock := swqos_mock.NewMockSolanaRPC(ctrl)
	signature := solana.Signature{1}

	gomock.InOrder(
		// not seen by the node yet
		rpcMock.EXPECT().
			GetSignatureStatuses(gomock.Any(), true, signature).
			Return(statusesResult(nil), nil),
		rpcMock.EXPECT().
			GetSignatureStatuses(gomock.Any(), true, signature).
			Return(statusesResult(&rpc.SignatureStatusesResult{
				ConfirmationStatus: rpc.ConfirmationStatusProcessed,
			}), nil),
		rpcMock.EXPECT().
			GetSignatureStatuses(gomock.Any(), true, signature).
			Return(statusesResult(&rpc.SignatureStatusesResult{
				ConfirmationStatus: rpc.ConfirmationStatusFinalized,
			}), nil),
	)

	c := NewConfirmer(rpcMock, 2*time.Second, 5*time.Millisecond, zap.NewNop())
	require.NoError(t, c.WaitForConfirmation(context.Background(), signature))
}

func TestWaitForConfirmationOnChainFailureStopsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpcMock := swqos_mock.NewMockSolanaRPC(ctrl)
	signature := solana.Signature{1}

	rpcMock.EXPECT().
		GetSignatureStatuses(gomock.Any(), true, signature).
		Return(statusesResult(&rpc.SignatureStatusesResult{
			ConfirmationStatus: rpc.ConfirmationStatusFinalized,
			Err:                map[string]interface{}{"InstructionError": []interface{}{0, "Custom"}},
		}), nil).
		Times(1)

	c := NewConfirmer(rpcMock, time.Second, 5*time.Millisecond, zap.NewNop())
	err := c.WaitForConfirmation(context.Background(), signature)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed on chain")
}

func TestWaitForConfirmationTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpcMock := swqos_mock.NewMockSolanaRPC(ctrl)
	signature := solana.Signature{1}

	rpcMock.EXPECT().
		GetSignatureStatuses(gomock.Any(), true, signature).
		Return(statusesResult(nil), nil).
		AnyTimes()

	c := NewConfirmer(rpcMock, 50*time.Millisecond, 10*time.Millisecond, zap.NewNop())
	err := c.WaitForConfirmation(context.Background(), signature)
	require.Error(t, err)
	require.Contains(t, err.Error(), "did not complete")
}

func TestWaitForConfirmationPropagatesRPCErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpcMock := swqos_mock.NewMockSolanaRPC(ctrl)
	signature := solana.Signature{1}
	rpcErr := errors.New("connection refused")

	rpcMock.EXPECT().
		GetSignatureStatuses(gomock.Any(), true, signature).
		Return(nil, rpcErr).
		AnyTimes()

	c := NewConfirmer(rpcMock, 50*time.Millisecond, 10*time.Millisecond, zap.NewNop())
	err := c.WaitForConfirmation(context.Background(), signature)
	require.Error(t, err)
}
