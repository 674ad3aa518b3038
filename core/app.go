package core

import "context"

// IBCModule is the application callback interface the router dispatches
// to. A registered application implements these four entry points.
type IBCModule interface {
	// OnSendPacket runs synchronously during SendPacket; its failure
	// aborts the send entirely.
	OnSendPacket(ctx context.Context, msg OnSendPacketMsg) error

	// OnRecvPacket runs during RecvPacket; its return value becomes the
	// packet acknowledgement and must be non-empty on success.
	OnRecvPacket(ctx context.Context, msg OnRecvPacketMsg) (Acknowledgement, error)

	// OnAcknowledgementPacket is dispatched once the counterparty's ack
	// has been verified; a failure propagates to the caller.
	OnAcknowledgementPacket(ctx context.Context, msg OnAcknowledgementPacketMsg) error

	// OnTimeoutPacket is dispatched once a non-membership proof of the
	// receipt has been verified.
	OnTimeoutPacket(ctx context.Context, msg OnTimeoutPacketMsg) error
}

// OnSendPacketMsg is the payload dispatched to the source application.
type OnSendPacketMsg struct {
	Packet  Packet
	Version string
	Sender  string
}

// OnRecvPacketMsg is the payload dispatched to the destination application.
type OnRecvPacketMsg struct {
	Packet  Packet
	Relayer string
}

// OnAcknowledgementPacketMsg is the payload dispatched to the source
// application once the counterparty's ack has been verified.
type OnAcknowledgementPacketMsg struct {
	Packet          Packet
	Acknowledgement Acknowledgement
	Relayer         string
}

// OnTimeoutPacketMsg is the payload dispatched to the source application
// once a non-membership proof of the receipt has been verified.
type OnTimeoutPacketMsg struct {
	Packet  Packet
	Relayer string
}
