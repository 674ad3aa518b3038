package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/x/ibcrouter/types"
)

// RegisterIbcApp binds a port id to an application instance. If PortId is
// nil the port is derived as "wasm."+address; a custom port id requires
// the sender to be the router's admin.
func (k Keeper) RegisterIbcApp(ctx context.Context, req types.RegisterIbcAppRequest) (core.PortId, error) {
	portId := types.DerivePortId(req.Address)
	if req.PortId != nil {
		if req.Sender != k.admin {
			return "", errorsmod.Wrapf(core.ErrUnauthorized, "custom port id requires admin %q", k.admin)
		}
		portId = *req.PortId
	}
	if err := core.ValidatePortId(portId); err != nil {
		return "", err
	}

	existing, err := k.store(ctx).Get(string(types.AppKey(portId)))
	if err != nil {
		return "", err
	}
	if existing != nil && string(existing) != req.Address {
		return "", errorsmod.Wrapf(types.ErrAppAlreadyRegistered, "port %q already bound to %q", portId, existing)
	}

	if err := k.store(ctx).Set(string(types.AppKey(portId)), []byte(req.Address)); err != nil {
		return "", err
	}
	k.apps.put(req.Address, req.App)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		core.EventTypeRegisterIbcApp,
		sdk.NewAttribute(core.AttributeKeyPortId, string(portId)),
		sdk.NewAttribute(core.AttributeKeyAppAddress, req.Address),
	))
	return portId, nil
}

// PortRouter resolves a port id to its bound app address.
func (k Keeper) PortRouter(ctx context.Context, portId core.PortId) (string, error) {
	addr, err := k.store(ctx).Get(string(types.AppKey(portId)))
	if err != nil {
		return "", err
	}
	if addr == nil {
		return "", errorsmod.Wrapf(core.ErrNotFound, "no app registered for port %q", portId)
	}
	return string(addr), nil
}

func (k Keeper) resolveApp(ctx context.Context, portId core.PortId) (core.IBCModule, error) {
	addr, err := k.PortRouter(ctx, portId)
	if err != nil {
		return nil, err
	}
	app, ok := k.apps.get(addr)
	if !ok {
		return nil, errorsmod.Wrapf(core.ErrNotFound, "no live app instance at %q", addr)
	}
	return app, nil
}
