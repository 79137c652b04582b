package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	relayerhttp "github.com/solwire/solana-swqos-relayer/internal/http"
)

var urlRelayer string

const (
	UrlFlagName = "url"
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use: "query",
}

func init() {
	QueryCmd.PersistentFlags().StringVarP(&urlRelayer, UrlFlagName, "u", "http://localhost:9999", "server url")
	QueryCmd.AddCommand(UnsuccessfulTxs)
	RootCmd.AddCommand(QueryCmd)
}

// UnsuccessfulTxs represents the unsuccessful-txs command
var UnsuccessfulTxs = &cobra.Command{
	Use:   "unsuccessful-txs",
	Short: "Query unsuccessfully submitted transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := cmd.Flags().GetString(UrlFlagName)
		if err != nil {
			return err
		}

		client, err := relayerhttp.NewRelayerClient(url)
		if err != nil {
			return fmt.Errorf("failed to get new relayer client: %w", err)
		}

		txs, err := client.GetUnsuccessfulTxs()
		if err != nil {
			return fmt.Errorf("failed to get unsuccessful txs: %w", err)
		}

		var response bytes.Buffer
		encoder := json.NewEncoder(&response)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(txs); err != nil {
			return fmt.Errorf("failed to encode unsuccessful txs: %w", err)
		}

		fmt.Printf("Unsuccessful txs:\n%s\n", response.String())

		return nil
	},
}
