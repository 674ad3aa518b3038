package core

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is shared by the client registry and the router: both consume
// the same small error taxonomy, so a relaying caller should not have to
// know which component produced a given failure.
const Codespace = "ibccore"

// NOTE: error codes must start from 2 (1 is reserved by cosmossdk.io/errors
// for the "internal" sentinel).
var (
	ErrUnauthorized             = errorsmod.Register(Codespace, 2, "unauthorized")
	ErrInvalidIdentifier        = errorsmod.Register(Codespace, 3, "invalid identifier")
	ErrNotFound                 = errorsmod.Register(Codespace, 4, "not found")
	ErrConflict                 = errorsmod.Register(Codespace, 5, "state conflict")
	ErrVerificationFailed       = errorsmod.Register(Codespace, 6, "proof verification failed")
	ErrCounterpartyMismatch     = errorsmod.Register(Codespace, 7, "counterparty mismatch")
	ErrPacketCommitmentMismatch = errorsmod.Register(Codespace, 8, "packet commitment mismatch")
	ErrInvalidTimeout           = errorsmod.Register(Codespace, 9, "invalid timeout")
	ErrReentrancy               = errorsmod.Register(Codespace, 10, "reentrancy")
	ErrCallbackContract         = errorsmod.Register(Codespace, 11, "callback contract violation")
	ErrUnknownReplyID           = errorsmod.Register(Codespace, 12, "unknown reply id")
)
