package keeper

import (
	"context"
	"encoding/binary"
	"strings"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/x/ibcrouter/types"
)

// InitGenesis restores port bindings, send sequences, and raw provable
// state verbatim. It does not restore live core.IBCModule instances; the
// host must re-register those through RegisterIbcApp before packet
// traffic resumes.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	s := k.store(ctx)

	for _, b := range genState.PortBindings {
		if err := s.Set(string(types.AppKey(b.PortId)), []byte(b.Address)); err != nil {
			return err
		}
	}
	for _, seq := range genState.SendSequences {
		var next [8]byte
		binary.BigEndian.PutUint64(next[:], uint64(seq.Next))
		if err := s.Set(core.NextSequenceSendPath(seq.PortId, seq.Channel), next[:]); err != nil {
			return err
		}
	}
	for _, entries := range [][]types.GenesisRawEntry{
		genState.PacketCommitments, genState.PacketAcks, genState.PacketReceipts,
	} {
		for _, e := range entries {
			if err := s.Set(e.Path, e.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExportGenesis walks every port binding, send sequence, and piece of
// provable state, serializing them verbatim.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	s := k.store(ctx)
	genesis := types.DefaultGenesisState()

	appPrefix := types.AppKeyPrefix()
	if err := s.Range(appPrefix, prefixRangeEnd(appPrefix), func(key, value []byte) (bool, error) {
		genesis.PortBindings = append(genesis.PortBindings, types.GenesisPortBinding{
			PortId:  core.PortId(key[len(appPrefix):]),
			Address: string(value),
		})
		return false, nil
	}); err != nil {
		return nil, err
	}

	seqPrefix := []byte(core.NextSequenceSendPathPrefix())
	if err := s.Range(seqPrefix, prefixRangeEnd(seqPrefix), func(key, value []byte) (bool, error) {
		port, channel, ok := parseSendSequenceKey(string(key[len(seqPrefix):]))
		if !ok {
			return false, nil
		}
		genesis.SendSequences = append(genesis.SendSequences, types.GenesisSendSequence{
			PortId:  port,
			Channel: channel,
			Next:    core.Sequence(binary.BigEndian.Uint64(value)),
		})
		return false, nil
	}); err != nil {
		return nil, err
	}

	for _, dst := range []struct {
		prefix string
		out    *[]types.GenesisRawEntry
	}{
		{core.CommitmentPathPrefix(), &genesis.PacketCommitments},
		{core.AckPathPrefix(), &genesis.PacketAcks},
		{core.ReceiptPathPrefix(), &genesis.PacketReceipts},
	} {
		prefix := []byte(dst.prefix)
		err := s.Range(prefix, prefixRangeEnd(prefix), func(key, value []byte) (bool, error) {
			*dst.out = append(*dst.out, types.GenesisRawEntry{Path: string(key), Value: value})
			return false, nil
		})
		if err != nil {
			return nil, err
		}
	}

	return genesis, nil
}

// parseSendSequenceKey reverses NextSequenceSendPath's "ports/%s/channels/%s" suffix.
func parseSendSequenceKey(suffix string) (core.PortId, core.ChannelId, bool) {
	const portsPrefix = "ports/"
	const channelsInfix = "/channels/"
	if len(suffix) < len(portsPrefix) || suffix[:len(portsPrefix)] != portsPrefix {
		return "", "", false
	}
	rest := suffix[len(portsPrefix):]
	idx := strings.Index(rest, channelsInfix)
	if idx < 0 {
		return "", "", false
	}
	return core.PortId(rest[:idx]), core.ChannelId(rest[idx+len(channelsInfix):]), true
}

func prefixRangeEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
