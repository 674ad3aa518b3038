package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/testutil/testctx"
	"github.com/tokenize-x/ibc-packet-router/x/ibcclient/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	requireT := require.New(t)

	k := newTestKeeper()
	ctx := testctx.Default()

	genState := types.GenesisState{
		NextClientNumber: 2,
		Clients: []types.GenesisClient{
			{
				ClientId:    "07-tendermint-0",
				ImplAddress: "addr-0",
				Creator:     "creator-0",
				Counterparty: &types.CounterpartyInfo{
					ClientId: "remote-0",
				},
			},
			{
				ClientId:    "07-tendermint-1",
				ImplAddress: "addr-1",
				Creator:     "creator-1",
			},
		},
	}

	requireT.NoError(k.InitGenesis(ctx, genState))

	got, err := k.ExportGenesis(ctx)
	requireT.NoError(err)
	requireT.Equal(genState.NextClientNumber, got.NextClientNumber)
	requireT.Len(got.Clients, 2)

	byId := make(map[core.ClientId]types.GenesisClient, len(got.Clients))
	for _, c := range got.Clients {
		byId[c.ClientId] = c
	}

	bound := byId["07-tendermint-0"]
	requireT.Equal("addr-0", bound.ImplAddress)
	requireT.Equal("creator-0", bound.Creator)
	requireT.NotNil(bound.Counterparty)
	requireT.Equal(core.ClientId("remote-0"), bound.Counterparty.ClientId)

	unbound := byId["07-tendermint-1"]
	requireT.Equal("addr-1", unbound.ImplAddress)
	requireT.Nil(unbound.Counterparty)

	// a fresh client created after InitGenesis continues the restored
	// counter rather than restarting from zero.
	next, err := k.CreateClient(ctx, types.CreateClientRequest{CodeRef: testCodeRef, Creator: "creator-2"})
	requireT.NoError(err)
	requireT.Equal(core.ClientId("07-tendermint-2"), next)
}

func TestGenesisEmptyState(t *testing.T) {
	requireT := require.New(t)

	k := newTestKeeper()
	ctx := testctx.Default()

	requireT.NoError(k.InitGenesis(ctx, *types.DefaultGenesisState()))

	got, err := k.ExportGenesis(ctx)
	requireT.NoError(err)
	requireT.Equal(uint64(0), got.NextClientNumber)
	requireT.Empty(got.Clients)
}
