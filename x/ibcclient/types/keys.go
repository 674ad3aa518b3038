package types

import (
	"cosmossdk.io/collections"

	"github.com/tokenize-x/ibc-packet-router/core"
)

const (
	// ModuleName defines the client registry's module name; also used as
	// its error codespace.
	ModuleName = "ibcclient"

	clientKeyPrefix       = "clients/"
	counterpartyKeyPrefix = "counterparty/"
	creatorKeyPrefix      = "creators/"
)

// NextClientNumberKey is the collections prefix for the monotonic counter
// that seeds fresh client ids.
var NextClientNumberKey = collections.NewPrefix(0)

// ClientKey returns the non-provable "clients/{client_id} → impl_address" key.
func ClientKey(id core.ClientId) []byte {
	return []byte(clientKeyPrefix + string(id))
}

// ClientKeyPrefix returns the raw "clients/" prefix, used to range over
// every registered client id during genesis export.
func ClientKeyPrefix() []byte {
	return []byte(clientKeyPrefix)
}

// CounterpartyKey returns the "counterparty/{client_id} → CounterpartyInfo" key.
func CounterpartyKey(id core.ClientId) []byte {
	return []byte(counterpartyKeyPrefix + string(id))
}

// CreatorKey returns the "creators/{client_id} → addr" key.
func CreatorKey(id core.ClientId) []byte {
	return []byte(creatorKeyPrefix + string(id))
}
