package core

import "fmt"

// Path prefixes for provable state, rendered as
// "<prefix>/ports/%s/channels/%s/sequences/%d".
const (
	commitmentPrefix = "commitments"
	ackPrefix        = "acks"
	receiptPrefix    = "receipts"
	nextSendPrefix   = "nextSequenceSend"
)

// CommitmentPath returns the standardized packet-commitment path.
func CommitmentPath(port PortId, channel ChannelId, seq Sequence) string {
	return sequencePath(commitmentPrefix, port, channel, seq)
}

// AckPath returns the standardized acknowledgement-commitment path.
func AckPath(port PortId, channel ChannelId, seq Sequence) string {
	return sequencePath(ackPrefix, port, channel, seq)
}

// ReceiptPath returns the standardized receipt path.
func ReceiptPath(port PortId, channel ChannelId, seq Sequence) string {
	return sequencePath(receiptPrefix, port, channel, seq)
}

// NextSequenceSendPath returns the path for a (port, channel)'s send counter.
func NextSequenceSendPath(port PortId, channel ChannelId) string {
	return fmt.Sprintf("%s/ports/%s/channels/%s", nextSendPrefix, port, channel)
}

// CommitmentPathPrefix, AckPathPrefix, ReceiptPathPrefix, and
// NextSequenceSendPathPrefix expose the raw path prefixes for genesis
// export, which ranges over each namespace rather than building one
// (port, channel, sequence) path at a time.
func CommitmentPathPrefix() string       { return commitmentPrefix + "/" }
func AckPathPrefix() string              { return ackPrefix + "/" }
func ReceiptPathPrefix() string          { return receiptPrefix + "/" }
func NextSequenceSendPathPrefix() string { return nextSendPrefix + "/" }

func sequencePath(prefix string, port PortId, channel ChannelId, seq Sequence) string {
	return fmt.Sprintf("%s/ports/%s/channels/%s/sequences/%d", prefix, port, channel, seq)
}

// MerklePath is an ordered sequence of path segments. Composing a prefix
// onto a MerklePath concatenates it onto the last element; the default
// prefix, absent any counterparty-supplied one, is a single empty element.
type MerklePath []string

// DefaultMerklePrefix is the zero-value composition base: a merkle path
// with one empty segment, onto which a leaf path is concatenated verbatim.
func DefaultMerklePrefix() MerklePath {
	return MerklePath{""}
}

// ApplyPrefix composes this prefix with a leaf path, always onto the
// prefix's last element.
func (p MerklePath) ApplyPrefix(leaf string) MerklePath {
	if len(p) == 0 {
		return MerklePath{leaf}
	}
	out := make(MerklePath, len(p))
	copy(out, p)
	out[len(out)-1] = out[len(out)-1] + leaf
	return out
}

// String renders the merkle path as a single '/'-joined string, useful for
// logging and for light clients that accept a flattened path.
func (p MerklePath) String() string {
	out := ""
	for i, seg := range p {
		if i > 0 {
			out += "/"
		}
		out += seg
	}
	return out
}
