package core

import (
	"encoding/binary"

	"github.com/cometbft/cometbft/crypto/tmhash"
)

// ReceiptValue is the single byte written at a receipt path; its mere
// presence is the proof against replay.
var ReceiptValue = []byte{0x01}

// PacketCommitmentValue hashes a packet as:
//
//	H( be64(timeout_ns) || be64(0) || be64(0) || H(data) || dst_port || dst_channel )
//
// The two zero 8-byte words are reserved revision-number/revision-height
// slots, kept for wire compatibility with IBC; this profile never
// populates them.
func PacketCommitmentValue(timeoutNanos uint64, data []byte, dstPort PortId, dstChannel ChannelId) []byte {
	dataHash := tmhash.Sum(data)

	buf := make([]byte, 0, 8+8+8+len(dataHash)+len(dstPort)+len(dstChannel))
	buf = appendBE64(buf, timeoutNanos)
	buf = appendBE64(buf, 0)
	buf = appendBE64(buf, 0)
	buf = append(buf, dataHash...)
	buf = append(buf, []byte(dstPort)...)
	buf = append(buf, []byte(dstChannel)...)

	return tmhash.Sum(buf)
}

// AckCommitmentValue hashes an acknowledgement.
func AckCommitmentValue(ack []byte) []byte {
	return tmhash.Sum(ack)
}

func appendBE64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}
