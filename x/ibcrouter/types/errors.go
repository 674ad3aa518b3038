package types

import errorsmod "cosmossdk.io/errors"

// ErrAppAlreadyRegistered is returned when RegisterIbcApp names a port
// that already maps to a different app address. A port_id maps to exactly
// one app address; re-registration with a different address for an
// occupied port is rejected.
var ErrAppAlreadyRegistered = errorsmod.Register(ModuleName, 2, "port already registered to a different app")
