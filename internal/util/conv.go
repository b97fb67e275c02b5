package util

import (
	"strconv"
)

// MustParseUint parse edilemezse 0 döner
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
