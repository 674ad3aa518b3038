package core

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/core/store"
)

// CommitmentStore is a byte-keyed, byte-valued ordered map with get, set,
// has, delete, and prefix iteration. The backing store is abstract: any
// ordered KV implementation works. It is a thin wrapper over
// cosmossdk.io/core/store.KVStore, opened fresh per call via a
// KVStoreService.
type CommitmentStore struct {
	kv store.KVStore
}

// OpenCommitmentStore opens the store for the current call. Every
// transition opens exactly one CommitmentStore and lets its writes commit
// as a single atomic unit alongside the rest of the call.
func OpenCommitmentStore(ctx context.Context, svc store.KVStoreService) CommitmentStore {
	return CommitmentStore{kv: svc.OpenKVStore(ctx)}
}

func (s CommitmentStore) Get(path string) ([]byte, error) {
	return s.kv.Get([]byte(path))
}

func (s CommitmentStore) Has(path string) (bool, error) {
	return s.kv.Has([]byte(path))
}

func (s CommitmentStore) Delete(path string) error {
	return s.kv.Delete([]byte(path))
}

// Set writes path unconditionally, overwriting any existing value. Used
// only for state that is allowed to be overwritten (e.g. nextSequenceSend);
// provable commitment/receipt/ack paths must go through SetOnce instead.
func (s CommitmentStore) Set(path string, value []byte) error {
	return s.kv.Set([]byte(path), value)
}

// SetOnce writes path only if it is currently absent. Writing to an
// existing commitment, receipt, or ack key is always a bug: the caller
// must delete first. Every call site for provable state uses this instead
// of Set, so duplicate-write bugs surface immediately as a conflict error
// rather than silently clobbering a commitment.
func (s CommitmentStore) SetOnce(path string, value []byte) error {
	has, err := s.Has(path)
	if err != nil {
		return err
	}
	if has {
		return errorsmod.Wrapf(ErrConflict, "path %q already set", path)
	}
	return s.Set(path, value)
}

// Range iterates all keys in [start, end) under the store, invoking fn for
// each. A nil end means no upper bound; the genesis exporters pass a
// prefix and the smallest key past that prefix.
func (s CommitmentStore) Range(start, end []byte, fn func(key, value []byte) (stop bool, err error)) error {
	it, err := s.kv.Iterator(start, end)
	if err != nil {
		return err
	}
	defer it.Close()

	for ; it.Valid(); it.Next() {
		stop, err := fn(it.Key(), it.Value())
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	return it.Error()
}
