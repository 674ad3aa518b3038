package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-packet-router/core"
)

func TestPacketCommitmentValueDeterministic(t *testing.T) {
	requireT := require.New(t)

	a := core.PacketCommitmentValue(1000, []byte("payload"), "transfer", "chan-0")
	b := core.PacketCommitmentValue(1000, []byte("payload"), "transfer", "chan-0")
	requireT.Equal(a, b)
	requireT.Len(a, 32)
}

func TestPacketCommitmentValueIgnoresSource(t *testing.T) {
	requireT := require.New(t)

	first := core.Packet{
		Sequence:           1,
		SourcePort:         "port-a",
		SourceChannel:      "chan-a",
		DestinationPort:    "transfer",
		DestinationChannel: "chan-0",
		Data:               []byte("payload"),
		Timeout:            core.Timeout{TimestampNanos: 1000},
	}
	second := first
	second.SourcePort = "port-b"
	second.SourceChannel = "chan-b"
	second.Sequence = 99

	requireT.Equal(first.CommitmentValue(), second.CommitmentValue())
}

func TestPacketCommitmentValueVariesWithPayload(t *testing.T) {
	requireT := require.New(t)

	a := core.PacketCommitmentValue(1000, []byte("payload"), "transfer", "chan-0")
	b := core.PacketCommitmentValue(1000, []byte("other"), "transfer", "chan-0")
	c := core.PacketCommitmentValue(2000, []byte("payload"), "transfer", "chan-0")
	d := core.PacketCommitmentValue(1000, []byte("payload"), "transfer", "chan-1")

	requireT.NotEqual(a, b)
	requireT.NotEqual(a, c)
	requireT.NotEqual(a, d)
}

func TestAckCommitmentValueDeterministic(t *testing.T) {
	requireT := require.New(t)

	a := core.AckCommitmentValue([]byte{0x01})
	b := core.AckCommitmentValue([]byte{0x01})
	c := core.AckCommitmentValue([]byte{0x02})

	requireT.Equal(a, b)
	requireT.NotEqual(a, c)
	requireT.Len(a, 32)
}

func TestAcknowledgementEmpty(t *testing.T) {
	requireT := require.New(t)

	requireT.True(core.Acknowledgement(nil).Empty())
	requireT.True(core.Acknowledgement([]byte{}).Empty())
	requireT.False(core.Acknowledgement([]byte{0x01}).Empty())
}
