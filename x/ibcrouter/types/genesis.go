package types

import "github.com/tokenize-x/ibc-packet-router/core"

// GenesisState is the router's exported/imported state.
type GenesisState struct {
	PortBindings      []GenesisPortBinding
	SendSequences     []GenesisSendSequence
	PacketCommitments []GenesisRawEntry
	PacketAcks        []GenesisRawEntry
	PacketReceipts    []GenesisRawEntry
}

// GenesisPortBinding is one port_id → app_address mapping. The live
// core.IBCModule instance behind app_address is not restored from
// genesis; the host must re-register it before packet traffic resumes.
type GenesisPortBinding struct {
	PortId  core.PortId
	Address string
}

// GenesisSendSequence is the next send sequence for one (port, channel).
type GenesisSendSequence struct {
	PortId  core.PortId
	Channel core.ChannelId
	Next    core.Sequence
}

// GenesisRawEntry is a raw provable-state path and its stored value, used
// to round-trip packet commitments, acks, and receipts verbatim.
type GenesisRawEntry struct {
	Path  string
	Value []byte
}

// DefaultGenesisState returns a router with no bindings or in-flight packets.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}
