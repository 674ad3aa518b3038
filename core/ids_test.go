package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-packet-router/core"
)

func TestNewClientId(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal(core.ClientId("08-wasm-7"), core.NewClientId("08-wasm-", 7))
	requireT.Equal(core.ClientId("07-tendermint-0"), core.NewClientId("07-tendermint-", 0))
}

func TestValidateClientId(t *testing.T) {
	testCases := []struct {
		name    string
		id      core.ClientId
		wantErr bool
	}{
		{name: "valid", id: "07-tendermint-0"},
		{name: "empty", id: "", wantErr: true},
		{name: "whitespace_only", id: "   ", wantErr: true},
		{name: "contains_slash", id: "07-tendermint/0", wantErr: true},
		{name: "leading_space", id: " 07-tendermint-0", wantErr: true},
		{name: "trailing_space", id: "07-tendermint-0 ", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requireT := require.New(t)
			err := core.ValidateClientId(tc.id)
			if tc.wantErr {
				requireT.Error(err)
				requireT.ErrorIs(err, core.ErrInvalidIdentifier)
			} else {
				requireT.NoError(err)
			}
		})
	}
}

func TestValidatePortId(t *testing.T) {
	requireT := require.New(t)

	requireT.NoError(core.ValidatePortId("wasm.cosmos1abc"))
	requireT.Error(core.ValidatePortId(""))
	requireT.Error(core.ValidatePortId("transfer/v2"))
}

func TestParseClientNumber(t *testing.T) {
	requireT := require.New(t)

	n, err := core.ParseClientNumber("08-wasm-7", "08-wasm-")
	requireT.NoError(err)
	requireT.Equal(uint64(7), n)

	_, err = core.ParseClientNumber("07-tendermint-3", "08-wasm-")
	requireT.Error(err)
	requireT.ErrorIs(err, core.ErrInvalidIdentifier)

	_, err = core.ParseClientNumber("08-wasm-abc", "08-wasm-")
	requireT.Error(err)
}
