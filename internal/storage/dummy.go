package storage

import (
	"fmt"
	"sync"

	"github.com/solwire/solana-swqos-relayer/internal/swqos"
)

// DummyStorage is an in-memory Storage used when no storage path is
// configured. Statuses do not survive a restart.
type DummyStorage struct {
	sync.Mutex
	pending      map[string]swqos.PendingSubmittedTxInfo
	unsuccessful map[string]swqos.UnsuccessfulTxInfo
}

func NewDummyStorage() *DummyStorage {
	return &DummyStorage{
		pending:      make(map[string]swqos.PendingSubmittedTxInfo),
		unsuccessful: make(map[string]swqos.UnsuccessfulTxInfo),
	}
}

func (s *DummyStorage) GetAllPendingTxs() ([]*swqos.PendingSubmittedTxInfo, error) {
	s.Lock()
	defer s.Unlock()

	var txs []*swqos.PendingSubmittedTxInfo
	for _, tx := range s.pending {
		tx := tx
		txs = append(txs, &tx)
	}
	return txs, nil
}

func (s *DummyStorage) GetAllUnsuccessfulTxs() ([]swqos.UnsuccessfulTxInfo, error) {
	s.Lock()
	defer s.Unlock()

	var txs []swqos.UnsuccessfulTxInfo
	for _, tx := range s.unsuccessful {
		txs = append(txs, tx)
	}
	return txs, nil
}

func (s *DummyStorage) SetTxStatus(tx swqos.PendingSubmittedTxInfo, status swqos.SubmittedTxInfo) error {
	s.Lock()
	defer s.Unlock()

	switch status.Status {
	case swqos.Submitted:
		s.pending[tx.Signature] = tx
	case swqos.Committed:
		delete(s.pending, tx.Signature)
	case swqos.ErrorOnCommit, swqos.ErrorOnSubmit:
		delete(s.pending, tx.Signature)
		s.unsuccessful[tx.Signature] = swqos.UnsuccessfulTxInfo{
			Signature:  tx.Signature,
			TradeType:  tx.TradeType,
			Status:     status.Status,
			Message:    status.Message,
			SubmitTime: tx.SubmitTime,
		}
	default:
		return fmt.Errorf("unknown tx status: %s", status.Status)
	}

	return nil
}

func (s *DummyStorage) Close() error {
	return nil
}
