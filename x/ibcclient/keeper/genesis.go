package keeper

import (
	"context"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/x/ibcclient/types"
)

// InitGenesis restores client records, counterparty bindings, and the
// next-client-number counter. It does not restore live light-client
// instances: the keeper only creates an instance inside CreateClient, for
// a freshly allocated client id, so GetLightClientModule returns
// ErrNotFound for a client restored here.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.NextClientNumber.Set(ctx, genState.NextClientNumber); err != nil {
		return err
	}

	s := k.store(ctx)
	for _, c := range genState.Clients {
		if err := s.Set(string(types.ClientKey(c.ClientId)), []byte(c.ImplAddress)); err != nil {
			return err
		}
		if err := s.Set(string(types.CreatorKey(c.ClientId)), []byte(c.Creator)); err != nil {
			return err
		}
		if c.Counterparty != nil {
			if err := k.setCounterparty(ctx, c.ClientId, *c.Counterparty); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExportGenesis walks every known client id and serializes its record and
// counterparty binding, if any.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	n, err := k.NextClientNumber.Peek(ctx)
	if err != nil {
		return nil, err
	}

	prefix := types.ClientKeyPrefix()
	genesis := &types.GenesisState{NextClientNumber: n}
	err = k.store(ctx).Range(prefix, prefixRangeEnd(prefix), func(key, value []byte) (bool, error) {
		id := core.ClientId(key[len(prefix):])

		creator, err := k.store(ctx).Get(string(types.CreatorKey(id)))
		if err != nil {
			return true, err
		}
		entry := types.GenesisClient{
			ClientId:    id,
			ImplAddress: string(value),
			Creator:     string(creator),
		}
		if cp, found, err := k.getCounterparty(ctx, id); err != nil {
			return true, err
		} else if found {
			entry.Counterparty = &cp
		}
		genesis.Clients = append(genesis.Clients, entry)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return genesis, nil
}

// prefixRangeEnd returns the smallest key that is strictly greater than
// every key beginning with prefix, the exclusive upper bound for a
// prefix scan.
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
