package main

import "github.com/solwire/solana-swqos-relayer/cmd/swqos_relayer/cmd"

func main() {
	cmd.Execute()
}
