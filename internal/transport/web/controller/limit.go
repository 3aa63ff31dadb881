package controller

import (
	"fmt"
	"net/url"
	"strconv"
)

const maxLimit = 50

// parseLimit reads the optional limit query parameter. Zero means the command default applies.
func parseLimit(q url.Values) (int, error) {
	if !q.Has("limit") {
		return 0, nil
	}

	limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse limit from query: %w", err)
	}
	if limit < 1 {
		return 0, fmt.Errorf("invalid limit value [%d]", limit)
	}
	if limit > maxLimit {
		return 0, fmt.Errorf("limit [%d] exceeds maximum [%d]", limit, maxLimit)
	}

	return int(limit), nil
}
