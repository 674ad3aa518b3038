package keeper_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/testutil/memstore"
	"github.com/tokenize-x/ibc-packet-router/testutil/testctx"
	ibcclienttypes "github.com/tokenize-x/ibc-packet-router/x/ibcclient/types"
	"github.com/tokenize-x/ibc-packet-router/x/ibcrouter/keeper"
	"github.com/tokenize-x/ibc-packet-router/x/ibcrouter/types"
)

// nopClients satisfies types.ClientKeeper without any registered client;
// these tests never reach a client lookup.
type nopClients struct{}

func (nopClients) ClientExists(context.Context, core.ClientId) (bool, error) { return false, nil }
func (nopClients) GetCounterparty(context.Context, core.ClientId) (ibcclienttypes.CounterpartyInfo, bool, error) {
	return ibcclienttypes.CounterpartyInfo{}, false, nil
}
func (nopClients) GetLightClientModule(context.Context, core.ClientId) (core.LightClientModule, error) {
	return nil, nil
}

func TestRegisterIbcAppDerivedPort(t *testing.T) {
	requireT := require.New(t)

	k := keeper.NewKeeper(memstore.NewService(), "admin", nopClients{})
	ctx := testctx.Default()
	app := newTestApp()

	portId, err := k.RegisterIbcApp(ctx, types.RegisterIbcAppRequest{
		Address: "cosmos1app",
		App:     app,
		Sender:  "anyone",
	})
	requireT.NoError(err)
	requireT.Equal(types.DerivePortId("cosmos1app"), portId)

	addr, err := k.PortRouter(ctx, portId)
	requireT.NoError(err)
	requireT.Equal("cosmos1app", addr)
}

func TestRegisterIbcAppCustomPortRequiresAdmin(t *testing.T) {
	requireT := require.New(t)

	k := keeper.NewKeeper(memstore.NewService(), "admin", nopClients{})
	ctx := testctx.Default()
	app := newTestApp()
	custom := core.PortId("transfer")

	_, err := k.RegisterIbcApp(ctx, types.RegisterIbcAppRequest{
		PortId:  &custom,
		Address: "cosmos1app",
		App:     app,
		Sender:  "not-admin",
	})
	requireT.Error(err)
	requireT.ErrorIs(err, core.ErrUnauthorized)

	portId, err := k.RegisterIbcApp(ctx, types.RegisterIbcAppRequest{
		PortId:  &custom,
		Address: "cosmos1app",
		App:     app,
		Sender:  "admin",
	})
	requireT.NoError(err)
	requireT.Equal(custom, portId)
}

func TestRegisterIbcAppConflict(t *testing.T) {
	requireT := require.New(t)

	k := keeper.NewKeeper(memstore.NewService(), "admin", nopClients{})
	ctx := testctx.Default()
	custom := core.PortId("transfer")

	_, err := k.RegisterIbcApp(ctx, types.RegisterIbcAppRequest{
		PortId:  &custom,
		Address: "cosmos1app",
		App:     newTestApp(),
		Sender:  "admin",
	})
	requireT.NoError(err)

	_, err = k.RegisterIbcApp(ctx, types.RegisterIbcAppRequest{
		PortId:  &custom,
		Address: "cosmos1other",
		App:     newTestApp(),
		Sender:  "admin",
	})
	requireT.Error(err)
	requireT.ErrorIs(err, types.ErrAppAlreadyRegistered)

	// re-registering the same port with the same address is idempotent.
	_, err = k.RegisterIbcApp(ctx, types.RegisterIbcAppRequest{
		PortId:  &custom,
		Address: "cosmos1app",
		App:     newTestApp(),
		Sender:  "admin",
	})
	requireT.NoError(err)
}

func TestPortRouterNotFound(t *testing.T) {
	requireT := require.New(t)

	k := keeper.NewKeeper(memstore.NewService(), "admin", nopClients{})
	ctx := testctx.Default()

	_, err := k.PortRouter(ctx, "no-such-port")
	requireT.Error(err)
	requireT.ErrorIs(err, core.ErrNotFound)
}
