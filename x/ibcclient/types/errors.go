package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ErrUnknownClientType is returned when CreateClient names a code_ref with
// no registered light-client factory.
var ErrUnknownClientType = errorsmod.Register(ModuleName, 2, "unknown light-client type")
