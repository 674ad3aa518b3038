package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/x/ibcclient/types"
)

// CreateClient allocates the next client id, instantiates a light-client
// at a deterministic address, and records the creator.
func (k Keeper) CreateClient(ctx context.Context, req types.CreateClientRequest) (core.ClientId, error) {
	factory, ok := k.factories[req.CodeRef]
	if !ok {
		return "", errorsmod.Wrapf(types.ErrUnknownClientType, "code_ref %q", req.CodeRef)
	}

	n, err := k.NextClientNumber.Next(ctx)
	if err != nil {
		return "", err
	}
	clientId := core.NewClientId(req.CodeRef, n)

	instance, err := factory(req.InitState)
	if err != nil {
		return "", errorsmod.Wrapf(err, "instantiating light client %q", clientId)
	}
	implAddr := deriveImplAddress(req.CodeRef, clientId)
	k.instances[implAddr] = instance

	s := k.store(ctx)
	if err := s.Set(string(types.ClientKey(clientId)), []byte(implAddr)); err != nil {
		return "", err
	}
	if err := s.Set(string(types.CreatorKey(clientId)), []byte(req.Creator)); err != nil {
		return "", err
	}

	if req.Counterparty != nil {
		if err := k.setCounterparty(ctx, clientId, *req.Counterparty); err != nil {
			return "", err
		}
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		core.EventTypeCreateClient,
		sdk.NewAttribute(core.AttributeKeyClientId, string(clientId)),
	))

	return clientId, nil
}

// ProvideCounterparty binds a client's counterparty; creator-only, and
// exactly once.
func (k Keeper) ProvideCounterparty(ctx context.Context, req types.ProvideCounterpartyRequest) error {
	record, err := k.getRecord(ctx, req.ClientId)
	if err != nil {
		return err
	}
	if record.Creator != req.Sender {
		return errorsmod.Wrapf(core.ErrUnauthorized, "only creator %q may provide a counterparty", record.Creator)
	}

	if _, found, err := k.getCounterparty(ctx, req.ClientId); err != nil {
		return err
	} else if found {
		return errorsmod.Wrapf(core.ErrConflict, "client %q already has a counterparty", req.ClientId)
	}

	if err := k.setCounterparty(ctx, req.ClientId, req.Counterparty); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		core.EventTypeProvideCounterparty,
		sdk.NewAttribute(core.AttributeKeyClientId, string(req.ClientId)),
		sdk.NewAttribute(core.AttributeKeyCounterparty, string(req.Counterparty.ClientId)),
	))
	return nil
}

// MigrateClient redirects subject's impl_address to substitute's,
// admin-only. The client-id counter is never reused, even across
// migration.
func (k Keeper) MigrateClient(ctx context.Context, req types.MigrateClientRequest) error {
	if req.Sender != k.authority {
		return errorsmod.Wrapf(core.ErrUnauthorized, "expected authority %q, got %q", k.authority, req.Sender)
	}

	if _, err := k.getRecord(ctx, req.SubjectId); err != nil {
		return err
	}
	substitute, err := k.getRecord(ctx, req.SubstituteId)
	if err != nil {
		return err
	}

	if err := k.store(ctx).Set(string(types.ClientKey(req.SubjectId)), []byte(substitute.ImplAddress)); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		core.EventTypeMigrateClient,
		sdk.NewAttribute(core.AttributeKeySubjectId, string(req.SubjectId)),
		sdk.NewAttribute(core.AttributeKeySubstituteId, string(req.SubstituteId)),
	))
	return nil
}

// ExecuteClient forwards a state-mutating message to the client
// implementation.
func (k Keeper) ExecuteClient(ctx context.Context, req types.ExecuteClientRequest) ([]core.Height, error) {
	module, err := k.GetLightClientModule(ctx, req.ClientId)
	if err != nil {
		return nil, err
	}
	return module.UpdateState(ctx, req.Msg)
}

// GetLightClientModule resolves a client id to its live light-client
// instance, the single place the router (via the ClientKeeper interface)
// dereferences a client id to something it can call VerifyMembership on.
func (k Keeper) GetLightClientModule(ctx context.Context, clientId core.ClientId) (core.LightClientModule, error) {
	record, err := k.getRecord(ctx, clientId)
	if err != nil {
		return nil, err
	}
	instance, ok := k.instances[record.ImplAddress]
	if !ok {
		return nil, errorsmod.Wrapf(core.ErrNotFound, "no live instance for client %q", clientId)
	}
	return instance, nil
}

// GetCounterparty returns clientId's counterparty, if any has been bound.
func (k Keeper) GetCounterparty(ctx context.Context, clientId core.ClientId) (types.CounterpartyInfo, bool, error) {
	cp, found, err := k.getCounterparty(ctx, clientId)
	return cp, found, err
}

// ClientInfo returns the registry's record for a client.
func (k Keeper) ClientInfo(ctx context.Context, clientId core.ClientId) (types.ClientRecord, error) {
	return k.getRecord(ctx, clientId)
}

func (k Keeper) setCounterparty(ctx context.Context, clientId core.ClientId, cp types.CounterpartyInfo) error {
	bz, err := json.Marshal(cp)
	if err != nil {
		return err
	}
	return k.store(ctx).Set(string(types.CounterpartyKey(clientId)), bz)
}

func (k Keeper) getCounterparty(ctx context.Context, clientId core.ClientId) (types.CounterpartyInfo, bool, error) {
	bz, err := k.store(ctx).Get(string(types.CounterpartyKey(clientId)))
	if err != nil {
		return types.CounterpartyInfo{}, false, err
	}
	if bz == nil {
		return types.CounterpartyInfo{}, false, nil
	}
	var cp types.CounterpartyInfo
	if err := json.Unmarshal(bz, &cp); err != nil {
		return types.CounterpartyInfo{}, false, err
	}
	return cp, true, nil
}
