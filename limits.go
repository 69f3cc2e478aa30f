package s2pager

const (
	// NoPageLimit disables the page ceiling.
	NoPageLimit = -1
	// DefaultPageLimit is the largest page the remote API hands out.
	DefaultPageLimit = 40
)

// IsNormalizedPageLimit clamps limit into [1, maxLimit]. The second value is
// false when clamping was necessary.
func IsNormalizedPageLimit(limit int, maxLimit int) (int, bool) {
	if maxLimit <= 0 {
		maxLimit = DefaultPageLimit
	}

	if limit <= 0 {
		return maxLimit, false
	} else if limit > maxLimit {
		return maxLimit, false
	}

	return limit, true
}

// NormalizePageLimit clamps limit into [1, maxLimit].
func NormalizePageLimit(limit int, maxLimit int) int {
	ret, _ := IsNormalizedPageLimit(limit, maxLimit)
	return ret
}

// PageLimit returns the number of elements a single request for the window
// asks for:
//   - bounded window → min(end - start, maxLimit)
//   - unbounded window → maxLimit
//
// With maxLimit = NoPageLimit the bounded window size is returned as is and an
// unbounded window yields NoPageLimit.
func PageLimit(c Cursor, maxLimit int) int {
	limit, bounded := c.Limit()

	if maxLimit == NoPageLimit {
		if !bounded {
			return NoPageLimit
		}
		return limit
	}

	if maxLimit <= 0 {
		maxLimit = DefaultPageLimit
	}
	if !bounded {
		return maxLimit
	}

	return min(limit, maxLimit)
}
