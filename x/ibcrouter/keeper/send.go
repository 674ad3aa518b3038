package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/x/ibcrouter/types"
)

// SendPacket assigns a sequence, writes a commitment, and dispatches
// OnSendPacket to the source application.
//
// Like every transition here, SendPacket does not roll back its own
// writes on failure: the host's transactional KV store is what makes an
// error return here discard the sequence bump and the commitment write
// together. This keeper only needs to return the error.
func (k Keeper) SendPacket(ctx context.Context, req types.SendPacketRequest) (core.Packet, error) {
	exists, err := k.clients.ClientExists(ctx, req.SourceChannel)
	if err != nil {
		return core.Packet{}, err
	}
	if !exists {
		return core.Packet{}, errorsmod.Wrapf(core.ErrNotFound, "client %q", req.SourceChannel)
	}
	counterparty, found, err := k.clients.GetCounterparty(ctx, req.SourceChannel)
	if err != nil {
		return core.Packet{}, err
	}
	if !found {
		return core.Packet{}, errorsmod.Wrapf(core.ErrNotFound, "client %q has no counterparty", req.SourceChannel)
	}

	dstChannel := counterparty.ClientId
	if req.DestinationChannel != "" {
		if req.DestinationChannel != counterparty.ClientId {
			return core.Packet{}, errorsmod.Wrapf(core.ErrCounterpartyMismatch,
				"destination channel %q does not match counterparty %q", req.DestinationChannel, counterparty.ClientId)
		}
		dstChannel = req.DestinationChannel
	}

	if req.Timeout.HasBlockHeight() {
		return core.Packet{}, errorsmod.Wrap(core.ErrInvalidTimeout, "invalid timeout height: height-based timeouts are rejected")
	}
	now := uint64(sdk.UnwrapSDKContext(ctx).BlockTime().UnixNano())
	if req.Timeout.TimestampNanos == 0 || req.Timeout.TimestampNanos <= now {
		return core.Packet{}, errorsmod.Wrapf(core.ErrInvalidTimeout, "timeout timestamp %d must be in the future of %d", req.Timeout.TimestampNanos, now)
	}

	seq, err := k.nextSequenceSend(ctx, req.SourcePort, req.SourceChannel)
	if err != nil {
		return core.Packet{}, err
	}

	packet := core.Packet{
		Sequence:           seq,
		SourcePort:         req.SourcePort,
		SourceChannel:      req.SourceChannel,
		DestinationPort:    req.DestinationPort,
		DestinationChannel: dstChannel,
		Data:               req.Data,
		Timeout:            req.Timeout,
	}

	path := core.CommitmentPath(req.SourcePort, req.SourceChannel, seq)
	if err := k.store(ctx).SetOnce(path, packet.CommitmentValue()); err != nil {
		return core.Packet{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		core.EventTypeSendPacket,
		sdk.NewAttribute(core.AttributeKeyDataHex, hexEncode(packet.Data)),
		sdk.NewAttribute(core.AttributeKeyTimeoutStamp, uintToString(packet.Timeout.TimestampNanos)),
		sdk.NewAttribute(core.AttributeKeySequence, uintToString(uint64(packet.Sequence))),
		sdk.NewAttribute(core.AttributeKeySrcPort, string(packet.SourcePort)),
		sdk.NewAttribute(core.AttributeKeySrcChannel, string(packet.SourceChannel)),
		sdk.NewAttribute(core.AttributeKeyDstPort, string(packet.DestinationPort)),
		sdk.NewAttribute(core.AttributeKeyDstChannel, string(packet.DestinationChannel)),
	))

	app, err := k.resolveApp(ctx, req.SourcePort)
	if err != nil {
		return core.Packet{}, err
	}
	if err := app.OnSendPacket(ctx, core.OnSendPacketMsg{Packet: packet, Version: "ibc-lite-1", Sender: req.Sender}); err != nil {
		return core.Packet{}, errorsmod.Wrap(err, "OnSendPacket callback")
	}

	return packet, nil
}
