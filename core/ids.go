package core

import (
	"fmt"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// ClientId identifies a light-client instance. ChannelId is deliberately
// the same type: one logical channel maps onto exactly one client.
type ClientId string

// ChannelId is an alias, not a distinct type: every channel id is a client
// id and vice versa.
type ChannelId = ClientId

// PortId identifies an application's endpoint in the router's app registry.
type PortId string

// Sequence is a per-(port,channel) monotonically increasing packet counter.
// It starts at 1.
type Sequence uint64

const FirstSequence Sequence = 1

// NewClientId renders "<prefix><n>", e.g. "08-wasm-7".
func NewClientId(prefix string, n uint64) ClientId {
	return ClientId(fmt.Sprintf("%s%d", prefix, n))
}

// ValidateClientId rejects empty, whitespace, and '/'-containing ids.
func ValidateClientId(id ClientId) error {
	return validateIdentifier(string(id))
}

// ValidatePortId rejects empty, whitespace, and '/'-containing ids. It has
// no separate type-prefix requirement beyond that; the "wasm."+address and
// admin-custom-string forms are produced by callers.
func ValidatePortId(id PortId) error {
	return validateIdentifier(string(id))
}

func validateIdentifier(id string) error {
	if strings.TrimSpace(id) == "" {
		return errorsmod.Wrap(ErrInvalidIdentifier, "identifier must not be empty or whitespace")
	}
	if strings.Contains(id, "/") {
		return errorsmod.Wrapf(ErrInvalidIdentifier, "identifier %q must not contain '/'", id)
	}
	if id != strings.TrimSpace(id) {
		return errorsmod.Wrapf(ErrInvalidIdentifier, "identifier %q must not have leading/trailing whitespace", id)
	}
	return nil
}

// ParseClientNumber extracts the trailing decimal counter from a client id
// given its known type prefix, e.g. ParseClientNumber("08-wasm-7", "08-wasm-") == 7.
func ParseClientNumber(id ClientId, prefix string) (uint64, error) {
	suffix := strings.TrimPrefix(string(id), prefix)
	if suffix == string(id) {
		return 0, errorsmod.Wrapf(ErrInvalidIdentifier, "client id %q does not have prefix %q", id, prefix)
	}
	n, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, errorsmod.Wrapf(ErrInvalidIdentifier, "client id %q has a non-numeric counter: %s", id, err)
	}
	return n, nil
}
