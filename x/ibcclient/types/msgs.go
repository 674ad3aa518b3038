package types

import "github.com/tokenize-x/ibc-packet-router/core"

// LightClientFactory instantiates a light-client implementation from its
// initial state bytes. Registered per code_ref at keeper construction time.
type LightClientFactory func(initState []byte) (core.LightClientModule, error)

// CreateClientRequest creates a new light-client instance.
type CreateClientRequest struct {
	CodeRef      string
	InitState    []byte
	Counterparty *CounterpartyInfo
	Creator      string
}

// ProvideCounterpartyRequest binds a counterparty to an existing client.
type ProvideCounterpartyRequest struct {
	ClientId     core.ClientId
	Counterparty CounterpartyInfo
	Sender       string
}

// MigrateClientRequest redirects a subject client's implementation to a
// substitute client's implementation.
type MigrateClientRequest struct {
	SubjectId    core.ClientId
	SubstituteId core.ClientId
	Sender       string
}

// ExecuteClientRequest forwards a state-mutating message to a client
// implementation.
type ExecuteClientRequest struct {
	ClientId core.ClientId
	Msg      []byte
}

// QueryClientKind enumerates the light-client query surface.
type QueryClientKind string

const (
	QueryStatus                QueryClientKind = "Status"
	QueryExportMetadata         QueryClientKind = "ExportMetadata"
	QueryTimestampAtHeight      QueryClientKind = "TimestampAtHeight"
	QueryVerifyClientMessage    QueryClientKind = "VerifyClientMessage"
	QueryCheckForMisbehaviour   QueryClientKind = "CheckForMisbehaviour"
)
