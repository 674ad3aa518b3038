package types

import (
	"github.com/tokenize-x/ibc-packet-router/core"
)

// ClientRecord is the client registry's view of one light client.
// ImplAddress is opaque to the registry itself; it is only ever handed
// back to the factory/instance cache that created it.
type ClientRecord struct {
	ClientId    core.ClientId
	ImplAddress string
	Creator     string
}

// CounterpartyInfo is the remote client's identifier plus the optional
// merkle-prefix needed to locate its provable state. A nil/empty
// MerklePathPrefix means the default single-empty-element prefix applies.
type CounterpartyInfo struct {
	ClientId         core.ClientId
	MerklePathPrefix core.MerklePath
}

// Prefix returns the effective merkle prefix, substituting the documented
// default when the counterparty never supplied one.
func (c CounterpartyInfo) Prefix() core.MerklePath {
	if len(c.MerklePathPrefix) == 0 {
		return core.DefaultMerklePrefix()
	}
	return c.MerklePathPrefix
}
