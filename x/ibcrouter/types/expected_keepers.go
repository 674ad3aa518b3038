package types

import (
	"context"

	ibcclienttypes "github.com/tokenize-x/ibc-packet-router/x/ibcclient/types"

	"github.com/tokenize-x/ibc-packet-router/core"
)

// ClientKeeper is the router's view of the client registry. The router
// only ever holds this interface, configured at instantiation; the
// registry never holds a back-pointer to the router.
type ClientKeeper interface {
	ClientExists(ctx context.Context, clientId core.ClientId) (bool, error)
	GetCounterparty(ctx context.Context, clientId core.ClientId) (ibcclienttypes.CounterpartyInfo, bool, error)
	GetLightClientModule(ctx context.Context, clientId core.ClientId) (core.LightClientModule, error)
}
