// Package tendermintstub is a minimal light-client implementation that
// satisfies core.LightClientModule without performing real Tendermint
// header or ICS23 proof cryptography. Tests and callers that need a
// working, pluggable light client use this; a real deployment would
// register a different x/ibcclient/types.LightClientFactory entirely.
package tendermintstub

import (
	"bytes"
	"context"
	"encoding/binary"
	"sync"

	errorsmod "cosmossdk.io/errors"

	"github.com/tokenize-x/ibc-packet-router/core"
)

// Module is a deterministic stand-in verifier: a membership proof is
// accepted only when it is byte-identical to the committed value, and a
// non-membership proof is accepted only when it is empty. This is the
// simplest possible substitute for real Merkle-proof verification that
// still exercises every call the Router makes into a light client.
type Module struct {
	mu          sync.Mutex
	frozen      bool
	latestTime  uint64
	heightTimes map[core.Height]uint64
}

var _ core.LightClientModule = (*Module)(nil)

// New constructs a fresh stub client from its opaque init-state bytes: an
// 8-byte big-endian initial timestamp, or zero-length for "unset".
func New(initState []byte) (core.LightClientModule, error) {
	m := &Module{heightTimes: make(map[core.Height]uint64)}
	if len(initState) == 8 {
		m.latestTime = binary.BigEndian.Uint64(initState)
	}
	return m, nil
}

// Factory adapts New to x/ibcclient/types.LightClientFactory's signature.
func Factory(initState []byte) (core.LightClientModule, error) {
	return New(initState)
}

func (m *Module) VerifyMembership(
	_ context.Context,
	proof []byte,
	path core.MerklePath,
	value []byte,
	_ core.Height,
	_, _ uint64,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frozen {
		return errorsmod.Wrapf(core.ErrVerificationFailed, "client is frozen")
	}
	if len(path) == 0 {
		return errorsmod.Wrap(core.ErrVerificationFailed, "empty path")
	}
	if !bytes.Equal(proof, value) {
		return errorsmod.Wrapf(core.ErrVerificationFailed, "membership proof mismatch at %q", path.String())
	}
	return nil
}

func (m *Module) VerifyNonMembership(
	_ context.Context,
	proof []byte,
	path core.MerklePath,
	_ core.Height,
	_, _ uint64,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frozen {
		return errorsmod.Wrapf(core.ErrVerificationFailed, "client is frozen")
	}
	if len(proof) != 0 {
		return errorsmod.Wrapf(core.ErrVerificationFailed, "non-membership proof not empty at %q", path.String())
	}
	return nil
}

func (m *Module) Status(context.Context) core.ClientStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frozen {
		return core.StatusFrozen
	}
	return core.StatusActive
}

func (m *Module) TimestampAtHeight(_ context.Context, height core.Height) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ts, ok := m.heightTimes[height]; ok {
		return ts, nil
	}
	if m.latestTime != 0 {
		return m.latestTime, nil
	}
	return 0, errorsmod.Wrapf(core.ErrNotFound, "no timestamp recorded at height %+v", height)
}

// UpdateState accepts an 8-byte big-endian (revision_height, timestamp_ns)
// pair as its "header": RevisionHeight (8 bytes) || timestamp_ns (8 bytes).
func (m *Module) UpdateState(_ context.Context, header []byte) ([]core.Height, error) {
	if len(header) != 16 {
		return nil, errorsmod.Wrap(core.ErrInvalidIdentifier, "stub header must be 16 bytes")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	height := core.Height{RevisionHeight: binary.BigEndian.Uint64(header[:8])}
	ts := binary.BigEndian.Uint64(header[8:])
	m.heightTimes[height] = ts
	m.latestTime = ts

	return []core.Height{height}, nil
}

// CheckForMisbehaviour treats a zero-length header as evidence of
// equivocation and freezes the client, without any real double-sign
// detection.
func (m *Module) CheckForMisbehaviour(_ context.Context, header []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(header) == 0 {
		m.frozen = true
		return true, nil
	}
	return false, nil
}
