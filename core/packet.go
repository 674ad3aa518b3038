package core

// Timeout carries only a timestamp: height-based timeouts are rejected.
// BlockHeight != 0 signals that a height-based timeout was supplied, and
// TimestampNanos == 0 that no timestamp was; SendPacket rejects both.
type Timeout struct {
	TimestampNanos uint64
	// BlockHeight is carried only so SendPacket can detect and reject a
	// caller that still supplies a height-based timeout; the router never
	// compares against it otherwise.
	BlockHeight uint64
}

// HasBlockHeight reports whether a height-based timeout was supplied.
func (t Timeout) HasBlockHeight() bool { return t.BlockHeight != 0 }

// Packet is the opaque message unit exchanged between two applications on
// different chains.
type Packet struct {
	Sequence           Sequence
	SourcePort         PortId
	SourceChannel      ChannelId
	DestinationPort    PortId
	DestinationChannel ChannelId
	Data               []byte
	Timeout            Timeout
}

// CommitmentValue hashes the packet as a function of exactly
// (timeout_ns, data, dst_port, dst_channel), independent of source
// identifiers, so the same bytes are produced on both chains.
func (p Packet) CommitmentValue() []byte {
	return PacketCommitmentValue(p.Timeout.TimestampNanos, p.Data, p.DestinationPort, p.DestinationChannel)
}

// Acknowledgement is an opaque, non-empty byte string. The core never
// interprets its contents; applications impose their own success
// convention.
type Acknowledgement []byte

func (a Acknowledgement) Empty() bool { return len(a) == 0 }
