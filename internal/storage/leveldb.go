package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/solwire/solana-swqos-relayer/internal/swqos"
)

const PendingTxStatusPrefix = "pending_txs"
const UnsuccessfulTxStatusPrefix = "unsuccessful_txs"

// LevelDBStorage keeps two keyspaces:
// first one : signature -> pending submitted tx info (txs awaiting a final status)
// second one: signature -> unsuccessful tx info (txs that failed to submit or commit)
type LevelDBStorage struct {
	sync.Mutex
	db *leveldb.DB
}

func NewLevelDBStorage(path string) (*LevelDBStorage, error) {
	database, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	return &LevelDBStorage{db: database}, nil
}

func (s *LevelDBStorage) GetAllPendingTxs() ([]*swqos.PendingSubmittedTxInfo, error) {
	s.Lock()
	defer s.Unlock()

	iterator := s.db.NewIterator(util.BytesPrefix([]byte(PendingTxStatusPrefix)), nil)
	defer iterator.Release()
	var txs []*swqos.PendingSubmittedTxInfo
	for iterator.Next() {
		value := iterator.Value()
		var txInfo swqos.PendingSubmittedTxInfo
		err := json.Unmarshal(value, &txInfo)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal data into PendingSubmittedTxInfo: %w", err)
		}

		txs = append(txs, &txInfo)
	}
	return txs, nil
}

func (s *LevelDBStorage) GetAllUnsuccessfulTxs() ([]swqos.UnsuccessfulTxInfo, error) {
	s.Lock()
	defer s.Unlock()

	iterator := s.db.NewIterator(util.BytesPrefix([]byte(UnsuccessfulTxStatusPrefix)), nil)
	defer iterator.Release()
	var txs []swqos.UnsuccessfulTxInfo
	for iterator.Next() {
		value := iterator.Value()
		var txInfo swqos.UnsuccessfulTxInfo
		err := json.Unmarshal(value, &txInfo)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal data into UnsuccessfulTxInfo: %w", err)
		}

		txs = append(txs, txInfo)
	}
	return txs, nil
}

// SetTxStatus applies a status transition for tx:
// 1) Submitted - tx accepted by the node, awaiting final status (stored under PendingTxStatusPrefix)
// 2) Committed - tx finalized successfully, the pending record is removed
// 3) ErrorOnCommit / ErrorOnSubmit - the pending record is removed and the tx
//    is stored under UnsuccessfulTxStatusPrefix
func (s *LevelDBStorage) SetTxStatus(tx swqos.PendingSubmittedTxInfo, status swqos.SubmittedTxInfo) error {
	s.Lock()
	defer s.Unlock()

	t, err := s.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("failed to open leveldb transaction: %w", err)
	}
	defer t.Discard()

	switch status.Status {
	case swqos.Submitted:
		data, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("failed to Marshal PendingSubmittedTxInfo: %w", err)
		}
		if err := t.Put(pendingKey(tx.Signature), data, nil); err != nil {
			return fmt.Errorf("failed to store pending tx: %w", err)
		}
	case swqos.Committed:
		if err := t.Delete(pendingKey(tx.Signature), nil); err != nil {
			return fmt.Errorf("failed to remove pending tx: %w", err)
		}
	case swqos.ErrorOnCommit, swqos.ErrorOnSubmit:
		if err := t.Delete(pendingKey(tx.Signature), nil); err != nil {
			return fmt.Errorf("failed to remove pending tx: %w", err)
		}
		data, err := json.Marshal(swqos.UnsuccessfulTxInfo{
			Signature:  tx.Signature,
			TradeType:  tx.TradeType,
			Status:     status.Status,
			Message:    status.Message,
			SubmitTime: tx.SubmitTime,
		})
		if err != nil {
			return fmt.Errorf("failed to Marshal UnsuccessfulTxInfo: %w", err)
		}
		if err := t.Put(unsuccessfulKey(tx.Signature), data, nil); err != nil {
			return fmt.Errorf("failed to store unsuccessful tx: %w", err)
		}
	default:
		return fmt.Errorf("unknown tx status: %s", status.Status)
	}

	if err := t.Commit(); err != nil {
		return fmt.Errorf("failed to commit leveldb transaction: %w", err)
	}

	return nil
}

func (s *LevelDBStorage) Close() error {
	return s.db.Close()
}

func pendingKey(signature string) []byte {
	return []byte(PendingTxStatusPrefix + "_" + signature)
}

func unsuccessfulKey(signature string) []byte {
	return []byte(UnsuccessfulTxStatusPrefix + "_" + signature)
}
