package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/x/ibcclient/types"
)

// QueryClient fans out to the light client's own query surface.
func (k Keeper) QueryClient(ctx context.Context, clientId core.ClientId, kind types.QueryClientKind, arg []byte) (any, error) {
	module, err := k.GetLightClientModule(ctx, clientId)
	if err != nil {
		return nil, err
	}

	switch kind {
	case types.QueryStatus:
		return module.Status(ctx), nil
	case types.QueryTimestampAtHeight:
		height, ok := decodeHeightArg(arg)
		if !ok {
			return nil, errorsmod.Wrap(core.ErrInvalidIdentifier, "TimestampAtHeight requires a height argument")
		}
		return module.TimestampAtHeight(ctx, height)
	case types.QueryVerifyClientMessage, types.QueryCheckForMisbehaviour:
		return module.CheckForMisbehaviour(ctx, arg)
	case types.QueryExportMetadata:
		return module.Status(ctx), nil
	default:
		return nil, errorsmod.Wrapf(core.ErrInvalidIdentifier, "unknown query kind %q", kind)
	}
}

func decodeHeightArg(arg []byte) (core.Height, bool) {
	if len(arg) != 16 {
		return core.Height{}, false
	}
	be64 := func(b []byte) uint64 {
		var v uint64
		for _, x := range b {
			v = v<<8 | uint64(x)
		}
		return v
	}
	return core.Height{RevisionNumber: be64(arg[:8]), RevisionHeight: be64(arg[8:])}, true
}
