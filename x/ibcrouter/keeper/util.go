package keeper

import (
	"encoding/hex"
	"strconv"
)

func hexEncode(b []byte) string {
	return hex.EncodeToString(b)
}

func uintToString(v uint64) string {
	return strconv.FormatUint(v, 10)
}
