package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/x/ibcrouter/types"
)

// Timeout proves the destination never received the packet by the timeout
// timestamp, deletes the local commitment, and dispatches OnTimeoutPacket
// to the source application.
func (k Keeper) Timeout(ctx context.Context, req types.TimeoutRequest) error {
	packet := req.Packet

	counterparty, found, err := k.clients.GetCounterparty(ctx, packet.SourceChannel)
	if err != nil {
		return err
	}
	if !found {
		return errorsmod.Wrapf(core.ErrNotFound, "client %q has no counterparty", packet.SourceChannel)
	}
	if counterparty.ClientId != packet.DestinationChannel {
		return errorsmod.Wrapf(core.ErrCounterpartyMismatch,
			"packet destination channel %q does not match counterparty %q", packet.DestinationChannel, counterparty.ClientId)
	}

	commitmentPath := core.CommitmentPath(packet.SourcePort, packet.SourceChannel, packet.Sequence)
	stored, err := k.store(ctx).Get(commitmentPath)
	if err != nil {
		return err
	}
	if stored == nil {
		return errorsmod.Wrapf(core.ErrNotFound, "no packet commitment at %q", commitmentPath)
	}
	if !bytes.Equal(stored, packet.CommitmentValue()) {
		return errorsmod.Wrap(core.ErrPacketCommitmentMismatch, "stored commitment does not match H(packet)")
	}

	module, err := k.clients.GetLightClientModule(ctx, packet.SourceChannel)
	if err != nil {
		return err
	}

	provenTime, err := module.TimestampAtHeight(ctx, req.ProofHeight)
	if err != nil {
		return err
	}
	if provenTime < packet.Timeout.TimestampNanos {
		return errorsmod.Wrapf(core.ErrInvalidTimeout,
			"proof height timestamp %d has not reached packet timeout %d", provenTime, packet.Timeout.TimestampNanos)
	}

	receiptPath := counterparty.Prefix().ApplyPrefix(
		core.ReceiptPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence),
	)
	if err := module.VerifyNonMembership(
		ctx, req.ProofUnreceived, receiptPath, req.ProofHeight, 0, 0,
	); err != nil {
		return errorsmod.Wrap(core.ErrVerificationFailed, err.Error())
	}

	if err := k.store(ctx).Delete(commitmentPath); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		core.EventTypeTimeoutPacket,
		sdk.NewAttribute(core.AttributeKeySequence, uintToString(uint64(packet.Sequence))),
		sdk.NewAttribute(core.AttributeKeySrcPort, string(packet.SourcePort)),
		sdk.NewAttribute(core.AttributeKeySrcChannel, string(packet.SourceChannel)),
		sdk.NewAttribute(core.AttributeKeyDstPort, string(packet.DestinationPort)),
		sdk.NewAttribute(core.AttributeKeyDstChannel, string(packet.DestinationChannel)),
	))

	app, err := k.resolveApp(ctx, packet.SourcePort)
	if err != nil {
		return err
	}
	return app.OnTimeoutPacket(ctx, core.OnTimeoutPacketMsg{Packet: packet, Relayer: req.Relayer})
}
