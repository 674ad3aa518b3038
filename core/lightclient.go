package core

import "context"

// Height is a light client's notion of "where" on the counterparty chain a
// proof was taken from. It keeps the IBC revision/height split for wire
// compatibility even though this module never varies the revision.
type Height struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

// IsZero reports whether the height was never set.
func (h Height) IsZero() bool { return h.RevisionNumber == 0 && h.RevisionHeight == 0 }

// LT reports whether h occurred strictly before other.
func (h Height) LT(other Height) bool {
	if h.RevisionNumber != other.RevisionNumber {
		return h.RevisionNumber < other.RevisionNumber
	}
	return h.RevisionHeight < other.RevisionHeight
}

// ClientStatus is the light client's self-reported liveness.
type ClientStatus string

const (
	StatusActive  ClientStatus = "Active"
	StatusExpired ClientStatus = "Expired"
	StatusFrozen  ClientStatus = "Frozen"
	StatusUnknown ClientStatus = "Unknown"
)

// LightClientModule is the polymorphic verification capability the router
// consumes. Within a single packet call it is treated as a pure verifier:
// failure of any verification aborts the transition atomically and no
// provable state is written. UpdateState and CheckForMisbehaviour are
// state-mutating; the client registry invokes UpdateState via
// ExecuteClient and CheckForMisbehaviour via QueryClient, and neither is
// ever invoked from inside a packet transition.
type LightClientModule interface {
	// VerifyMembership checks that value is committed at path, at height,
	// per the attached proof.
	VerifyMembership(
		ctx context.Context,
		proof []byte,
		path MerklePath,
		value []byte,
		height Height,
		delayTimePeriod, delayBlockPeriod uint64,
	) error

	// VerifyNonMembership checks that nothing is committed at path, at
	// height, per the attached proof.
	VerifyNonMembership(
		ctx context.Context,
		proof []byte,
		path MerklePath,
		height Height,
		delayTimePeriod, delayBlockPeriod uint64,
	) error

	// Status reports the client's current liveness.
	Status(ctx context.Context) ClientStatus

	// TimestampAtHeight returns the counterparty's block time, in unix
	// nanoseconds, at height.
	TimestampAtHeight(ctx context.Context, height Height) (uint64, error)

	// UpdateState is a state-mutating call forwarded from ExecuteClient
	// (client-owner messages only, never from a packet transition).
	UpdateState(ctx context.Context, header []byte) ([]Height, error)

	// CheckForMisbehaviour inspects a header for evidence of equivocation.
	CheckForMisbehaviour(ctx context.Context, header []byte) (bool, error)
}
