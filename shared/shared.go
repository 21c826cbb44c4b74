package shared

import (
	"fmt"
	"strconv"
	"strings"

	"hotel/shared/failure"
)

const cacheKeySeparator = ":"

// ParseID parses a path id. Ids are positive integers.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

// BuildCacheKey joins prefix and parts with ':'. Empty parts are kept so
// "room:gets:" and "room:gets" stay distinct.
func BuildCacheKey(prefix string, parts ...any) string {
	var builder strings.Builder

	builder.WriteString(prefix)

	for _, part := range parts {
		builder.WriteString(cacheKeySeparator)
		builder.WriteString(fmt.Sprint(part))
	}

	return builder.String()
}
