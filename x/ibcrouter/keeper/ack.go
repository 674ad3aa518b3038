package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/x/ibcrouter/types"
)

// Acknowledgement verifies the counterparty's ack commitment, deletes the
// local packet commitment, and dispatches OnAcknowledgementPacket. A
// callback failure propagates to the caller.
func (k Keeper) Acknowledgement(ctx context.Context, req types.AcknowledgementRequest) error {
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
	ackPath := counterparty.Prefix().ApplyPrefix(
		core.AckPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence),
	)
	if err := module.VerifyMembership(
		ctx, req.ProofAcked, ackPath, core.AckCommitmentValue(req.Ack), req.ProofHeight, 0, 0,
	); err != nil {
		return errorsmod.Wrap(core.ErrVerificationFailed, err.Error())
	}

	if err := k.store(ctx).Delete(commitmentPath); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		core.EventTypeAcknowledgePacket,
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
	return app.OnAcknowledgementPacket(ctx, core.OnAcknowledgementPacketMsg{
		Packet:          packet,
		Acknowledgement: req.Ack,
		Relayer:         req.Relayer,
	})
}
