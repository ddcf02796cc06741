package utils

import (
	// Go Internal Packages
	"strconv"
	"strings"
)

// JoinIDs renders ids as a comma separated list for log fields.
func JoinIDs(ids []int64) string {
	strs := make([]string, len(ids))
	for i, v := range ids {
		strs[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(strs, ",")
}
