// Package testctx builds a bare sdk.Context for keeper unit tests that
// have no simapp to embed against. It carries an event manager, a logger,
// and a fixed block time, but no real multistore: every keeper under test
// reaches state exclusively through a store.KVStoreService (see
// testutil/memstore), never through ctx.KVStore directly.
package testctx

import (
	"time"

	"cosmossdk.io/log"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// New returns an sdk.Context (itself a context.Context) whose block time
// is blockTime.
func New(blockTime time.Time) sdk.Context {
	header := cmtproto.Header{Time: blockTime}
	return sdk.NewContext(nil, header, false, log.NewNopLogger()).
		WithEventManager(sdk.NewEventManager())
}

// Default returns a context with a fixed, arbitrary block time, useful
// for tests that only need timeouts expressed relative to "now".
func Default() sdk.Context {
	return New(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}
