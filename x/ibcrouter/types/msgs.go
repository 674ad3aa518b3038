package types

import "github.com/tokenize-x/ibc-packet-router/core"

// SendPacketRequest originates a new packet on a channel.
type SendPacketRequest struct {
	SourceChannel      core.ChannelId
	SourcePort         core.PortId
	DestinationChannel core.ChannelId // optional; defaults to the counterparty's client id
	DestinationPort    core.PortId
	Data               []byte
	Timeout            core.Timeout
	Sender             string
}

// RecvPacketRequest delivers a packet proven to have been sent.
type RecvPacketRequest struct {
	Packet          core.Packet
	ProofCommitment []byte
	ProofHeight     core.Height
	Relayer         string
}

// AcknowledgementRequest delivers a proven acknowledgement back to the
// packet's source.
type AcknowledgementRequest struct {
	Packet      core.Packet
	Ack         core.Acknowledgement
	ProofAcked  []byte
	ProofHeight core.Height
	Relayer     string
}

// TimeoutRequest proves a packet was never received by its timeout and
// returns it to the source.
type TimeoutRequest struct {
	Packet          core.Packet
	ProofUnreceived []byte
	ProofHeight     core.Height
	// NextSequenceRecv is carried only for wire compatibility with ordered
	// channels; this profile is unordered and never reads it.
	NextSequenceRecv uint64
	Relayer          string
}

// RegisterIbcAppRequest binds an application instance to a port.
type RegisterIbcAppRequest struct {
	PortId  *core.PortId // nil ⇒ derive "wasm."+Address
	Address string
	App     core.IBCModule
	Sender  string
}
