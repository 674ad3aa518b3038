package keeper

import (
	"context"
	"sync"

	"cosmossdk.io/core/store"

	"github.com/tokenize-x/ibc-packet-router/core"
	"github.com/tokenize-x/ibc-packet-router/x/ibcrouter/types"
)

// Keeper is the router, the packet engine. It owns sequence counters, the
// provable packet-commitment/ack/receipt store, the app registry, and
// drives the four packet transitions.
//
// It holds clients as a plain interface value configured at construction;
// the registry never points back.
type Keeper struct {
	storeService store.KVStoreService
	admin        string
	clients      types.ClientKeeper

	// apps caches live application instances by their opaque address, the
	// same "address behind a persisted pointer" pattern the client
	// registry uses for light-client instances (x/ibcclient/keeper.Keeper).
	apps *appRegistry

	// reply is the continuation guard for RecvPacket's reply-on-success
	// dispatch. Go's call stack lets the packet be passed straight into the
	// continuation as a local variable instead of a stashed singleton; this
	// guard only preserves the "at most one recv in flight, reentrancy is
	// fatal" invariant.
	reply *replyGuard
}

// NewKeeper constructs the router. admin is the registry-wide principal
// permitted to register a custom (non-derived) port id.
func NewKeeper(storeService store.KVStoreService, admin string, clients types.ClientKeeper) Keeper {
	return Keeper{
		storeService: storeService,
		admin:        admin,
		clients:      clients,
		apps:         newAppRegistry(),
		reply:        &replyGuard{},
	}
}

func (k Keeper) store(ctx context.Context) core.CommitmentStore {
	return core.OpenCommitmentStore(ctx, k.storeService)
}

// appRegistry is the in-process cache of port_id → app_address → instance.
// Persisted state (ibc_apps/{port_id} → app_address) only ever stores the
// address half; this cache resolves the address to something callable,
// mirroring x/ibcclient/keeper's instance cache for light clients.
type appRegistry struct {
	mu        sync.Mutex
	instances map[string]core.IBCModule
}

func newAppRegistry() *appRegistry {
	return &appRegistry{instances: make(map[string]core.IBCModule)}
}

func (r *appRegistry) put(address string, app core.IBCModule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[address] = app
}

func (r *appRegistry) get(address string) (core.IBCModule, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.instances[address]
	return app, ok
}

// replyGuard implements the "at most one packet in flight, reentrancy is
// fatal" invariant without actually stashing a packet: RecvPacket passes
// the packet to its continuation directly as a local variable.
type replyGuard struct {
	mu       sync.Mutex
	inFlight bool
}

func (g *replyGuard) enter() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight {
		return false
	}
	g.inFlight = true
	return true
}

func (g *replyGuard) exit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inFlight = false
}
