package swqos

import (
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// DumpTransactionInstructions writes an error-level structural dump of every
// instruction in tx: program id, account index list and raw instruction
// bytes. Providers call it when a submitted transaction fails to confirm.
func DumpTransactionInstructions(logger *zap.Logger, tx *solana.Transaction) {
	version := "legacy"
	if tx.Message.GetVersion() == solana.MessageVersionV0 {
		version = "v0"
	}

	logger.Error("transaction instruction dump",
		zap.String("message_version", version),
		zap.Int("num_instructions", len(tx.Message.Instructions)))

	for i, instruction := range tx.Message.Instructions {
		// In v0 messages the program id index may only point at static
		// account keys; anything out of range comes from a lookup table.
		programID := "unknown"
		if int(instruction.ProgramIDIndex) < len(tx.Message.AccountKeys) {
			programID = tx.Message.AccountKeys[instruction.ProgramIDIndex].String()
		}

		logger.Error("instruction",
			zap.Int("index", i),
			zap.String("program_id", programID),
			zap.Uint16("program_id_index", instruction.ProgramIDIndex),
			zap.Any("account_indices", instruction.Accounts),
			zap.Binary("data", []byte(instruction.Data)))
	}
}
