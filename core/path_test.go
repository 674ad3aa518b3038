package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-packet-router/core"
)

func TestSequencePaths(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal(
		"commitments/ports/transfer/channels/07-tendermint-0/sequences/1",
		core.CommitmentPath("transfer", "07-tendermint-0", 1),
	)
	requireT.Equal(
		"acks/ports/transfer/channels/07-tendermint-0/sequences/1",
		core.AckPath("transfer", "07-tendermint-0", 1),
	)
	requireT.Equal(
		"receipts/ports/transfer/channels/07-tendermint-0/sequences/1",
		core.ReceiptPath("transfer", "07-tendermint-0", 1),
	)
	requireT.Equal(
		"nextSequenceSend/ports/transfer/channels/07-tendermint-0",
		core.NextSequenceSendPath("transfer", "07-tendermint-0"),
	)
}

func TestPathPrefixesMatchBuilders(t *testing.T) {
	requireT := require.New(t)

	path := core.CommitmentPath("transfer", "07-tendermint-0", 5)
	requireT.True(len(path) > len(core.CommitmentPathPrefix()))
	requireT.Equal(core.CommitmentPathPrefix(), path[:len(core.CommitmentPathPrefix())])

	requireT.Equal(core.AckPathPrefix(), core.AckPath("a", "b", 1)[:len(core.AckPathPrefix())])
	requireT.Equal(core.ReceiptPathPrefix(), core.ReceiptPath("a", "b", 1)[:len(core.ReceiptPathPrefix())])
	requireT.Equal(
		core.NextSequenceSendPathPrefix(),
		core.NextSequenceSendPath("a", "b")[:len(core.NextSequenceSendPathPrefix())],
	)
}

func TestMerklePathApplyPrefix(t *testing.T) {
	requireT := require.New(t)

	def := core.DefaultMerklePrefix()
	requireT.Equal(core.MerklePath{""}, def)

	leaf := def.ApplyPrefix("commitments/ports/transfer/channels/chan-0/sequences/1")
	requireT.Equal(
		core.MerklePath{"commitments/ports/transfer/channels/chan-0/sequences/1"},
		leaf,
	)

	custom := core.MerklePath{"ibc", ""}
	composed := custom.ApplyPrefix("leaf")
	requireT.Equal(core.MerklePath{"ibc", "leaf"}, composed)

	var empty core.MerklePath
	requireT.Equal(core.MerklePath{"leaf"}, empty.ApplyPrefix("leaf"))
}

func TestMerklePathString(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal("ibc/leaf", core.MerklePath{"ibc", "leaf"}.String())
	requireT.Equal("", core.MerklePath{}.String())
	requireT.Equal("solo", core.MerklePath{"solo"}.String())
}
