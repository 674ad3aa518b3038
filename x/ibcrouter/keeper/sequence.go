package keeper

import (
	"context"
	"encoding/binary"

	"github.com/tokenize-x/ibc-packet-router/core"
)

// nextSequenceSend loads the send counter for (port, channel), defaulting
// to 1, then stores the incremented value and returns the sequence to use
// for this send. It is not a collections.Sequence because it is keyed per
// (port, channel) rather than being a single global counter.
func (k Keeper) nextSequenceSend(ctx context.Context, port core.PortId, channel core.ChannelId) (core.Sequence, error) {
	s := k.store(ctx)
	path := core.NextSequenceSendPath(port, channel)

	raw, err := s.Get(path)
	if err != nil {
		return 0, err
	}

	seq := core.FirstSequence
	if raw != nil {
		seq = core.Sequence(binary.BigEndian.Uint64(raw))
	}

	var next [8]byte
	binary.BigEndian.PutUint64(next[:], uint64(seq)+1)
	if err := s.Set(path, next[:]); err != nil {
		return 0, err
	}

	return seq, nil
}
