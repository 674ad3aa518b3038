package core

// Event type names and attribute keys, emitted via
// sdk.Context.EventManager().EmitEvent as plain string-attribute sdk.Events
// rather than typed proto events. Relayers consume these by attribute key.
const (
	EventTypeSendPacket          = "send_packet"
	EventTypeRecvPacket          = "recv_packet"
	EventTypeWriteAcknowledgement = "write_acknowledgement"
	EventTypeAcknowledgePacket   = "acknowledge_packet"
	EventTypeTimeoutPacket       = "timeout_packet"
	EventTypeCreateClient        = "create_client"
	EventTypeProvideCounterparty = "provide_counterparty"
	EventTypeMigrateClient       = "migrate_client"
	EventTypeRegisterIbcApp      = "register_ibc_app"

	AttributeKeyDataHex       = "packet_data_hex"
	AttributeKeyAckHex        = "packet_ack_hex"
	AttributeKeyTimeoutStamp  = "packet_timeout_timestamp"
	AttributeKeySequence      = "packet_sequence"
	AttributeKeySrcPort       = "packet_src_port"
	AttributeKeySrcChannel    = "packet_src_channel"
	AttributeKeyDstPort       = "packet_dst_port"
	AttributeKeyDstChannel    = "packet_dst_channel"

	AttributeKeyClientId       = "client_id"
	AttributeKeySubjectId      = "subject_client_id"
	AttributeKeySubstituteId   = "substitute_client_id"
	AttributeKeyCounterparty   = "counterparty_client_id"
	AttributeKeyPortId         = "port_id"
	AttributeKeyAppAddress     = "app_address"
)
