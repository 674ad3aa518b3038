package types

import "github.com/tokenize-x/ibc-packet-router/core"

// GenesisState is the client registry's exported/imported state.
type GenesisState struct {
	NextClientNumber uint64
	Clients          []GenesisClient
}

// GenesisClient is one client record plus its optional counterparty
// binding. ImplAddress is restored verbatim, but the live light-client
// instance behind it is not, and the keeper has no call that attaches an
// instance to an existing ImplAddress.
type GenesisClient struct {
	ClientId     core.ClientId
	ImplAddress  string
	Creator      string
	Counterparty *CounterpartyInfo
}

// DefaultGenesisState returns a registry with no clients.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{NextClientNumber: 0}
}
