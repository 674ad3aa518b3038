package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/x/ibcrouter/types"
)

// RecvPacket verifies the counterparty's commitment, writes a receipt,
// dispatches OnRecvPacket to the destination application, and on success
// writes the ack commitment.
//
// The packet lives in a local variable across the OnRecvPacket call and
// its reply continuation below; k.reply only enforces "at most one packet
// reply in flight".
func (k Keeper) RecvPacket(ctx context.Context, req types.RecvPacketRequest) (core.Acknowledgement, error) {
	packet := req.Packet

	counterparty, found, err := k.clients.GetCounterparty(ctx, packet.DestinationChannel)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errorsmod.Wrapf(core.ErrNotFound, "client %q has no counterparty", packet.DestinationChannel)
	}
	if counterparty.ClientId != packet.SourceChannel {
		return nil, errorsmod.Wrapf(core.ErrCounterpartyMismatch,
			"packet source channel %q does not match counterparty %q", packet.SourceChannel, counterparty.ClientId)
	}

	module, err := k.clients.GetLightClientModule(ctx, packet.DestinationChannel)
	if err != nil {
		return nil, err
	}

	commitmentPath := counterparty.Prefix().ApplyPrefix(
		core.CommitmentPath(packet.SourcePort, packet.SourceChannel, packet.Sequence),
	)
	if err := module.VerifyMembership(
		ctx, req.ProofCommitment, commitmentPath, packet.CommitmentValue(), req.ProofHeight, 0, 0,
	); err != nil {
		return nil, errorsmod.Wrap(core.ErrVerificationFailed, err.Error())
	}

	receiptPath := core.ReceiptPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	has, err := k.store(ctx).Has(receiptPath)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, errorsmod.Wrapf(core.ErrConflict, "packet already received at %q", receiptPath)
	}
	if err := k.store(ctx).SetOnce(receiptPath, core.ReceiptValue); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		core.EventTypeRecvPacket,
		sdk.NewAttribute(core.AttributeKeyDataHex, hexEncode(packet.Data)),
		sdk.NewAttribute(core.AttributeKeySrcPort, string(packet.SourcePort)),
		sdk.NewAttribute(core.AttributeKeySrcChannel, string(packet.SourceChannel)),
		sdk.NewAttribute(core.AttributeKeyDstPort, string(packet.DestinationPort)),
		sdk.NewAttribute(core.AttributeKeyDstChannel, string(packet.DestinationChannel)),
	))

	if !k.reply.enter() {
		return nil, errorsmod.Wrap(core.ErrReentrancy, "a packet reply is already in flight")
	}
	defer k.reply.exit()

	app, err := k.resolveApp(ctx, packet.DestinationPort)
	if err != nil {
		return nil, err
	}
	ack, err := app.OnRecvPacket(ctx, core.OnRecvPacketMsg{Packet: packet, Relayer: req.Relayer})
	if err != nil {
		return nil, errorsmod.Wrap(err, "OnRecvPacket callback")
	}

	return k.writeAcknowledgement(ctx, packet, ack)
}

// writeAcknowledgement is RecvPacket's reply continuation: it runs after
// OnRecvPacket returns and writes the ack commitment. It is split out so a
// future async/replay dispatcher could invoke it from a genuine reply
// handler without re-deriving the packet.
func (k Keeper) writeAcknowledgement(ctx context.Context, packet core.Packet, ack core.Acknowledgement) (core.Acknowledgement, error) {
	if ack.Empty() {
		return nil, errorsmod.Wrap(core.ErrCallbackContract, "no recv acknowledgement")
	}

	ackPath := core.AckPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	if err := k.store(ctx).SetOnce(ackPath, core.AckCommitmentValue(ack)); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		core.EventTypeWriteAcknowledgement,
		sdk.NewAttribute(core.AttributeKeyDataHex, hexEncode(packet.Data)),
		sdk.NewAttribute(core.AttributeKeyAckHex, hexEncode(ack)),
		sdk.NewAttribute(core.AttributeKeySrcPort, string(packet.SourcePort)),
		sdk.NewAttribute(core.AttributeKeySrcChannel, string(packet.SourceChannel)),
		sdk.NewAttribute(core.AttributeKeyDstPort, string(packet.DestinationPort)),
		sdk.NewAttribute(core.AttributeKeyDstChannel, string(packet.DestinationChannel)),
	))

	return ack, nil
}
