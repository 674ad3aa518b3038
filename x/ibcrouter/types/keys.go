package types

import "github.com/tokenize-x/ibc-packet-router/core"

const (
	// ModuleName defines the router's module name and error codespace.
	ModuleName = "ibcrouter"

	appKeyPrefix = "ibc_apps/"
)

// AppKey returns the non-provable "ibc_apps/{port_id} → app_address" key.
func AppKey(port core.PortId) []byte {
	return []byte(appKeyPrefix + string(port))
}

// AppKeyPrefix returns the raw "ibc_apps/" prefix, used to range over
// every registered port during genesis export.
func AppKeyPrefix() []byte {
	return []byte(appKeyPrefix)
}

// DerivePortId returns the auto-registered port id for an app address
// without an explicit port_id: "wasm." + <app-address>.
func DerivePortId(appAddress string) core.PortId {
	return core.PortId("wasm." + appAddress)
}
