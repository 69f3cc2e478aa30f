package s2pager

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

var _encoder = base64.RawURLEncoding

// Cursor is a LIMIT/OFFSET pagination window: an offset and an optional upper
// bound. A Cursor is a value; the Stream that owns it is the only thing that
// advances it.
//
// IMPORTANT:
// start only increases over the lifetime of a Cursor and, when the cursor is
// bounded, never passes end.
type Cursor struct {
	start   int
	end     int
	bounded bool
}

// NewCursor returns a bounded window [start, end). A window with start > end
// is nonsensical and simply cannot progress.
func NewCursor(start, end int) Cursor {
	return Cursor{
		start:   start,
		end:     end,
		bounded: true,
	}
}

// WithStart returns an unbounded cursor starting at the given offset.
func WithStart(start int) Cursor {
	return Cursor{
		start: start,
	}
}

// Limited returns a bounded window of at most limit elements starting at start.
func Limited(start, limit int) Cursor {
	return NewCursor(start, start+limit)
}

// DecodeCursor parses a token produced by Cursor.String. An empty token is the
// unbounded cursor from offset zero.
func DecodeCursor(token string) (Cursor, error) {
	if len(token) == 0 {
		return WithStart(0), nil
	}

	raw, err := _encoder.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("failed to decode base64 encoded cursor: %w", err)
	}

	startPart, endPart, bounded := strings.Cut(string(raw), "-")

	start, err := strconv.Atoi(startPart)
	if err != nil || start < 0 {
		return Cursor{}, fmt.Errorf("failed to decode cursor start value '%s'", startPart)
	}

	if !bounded {
		return WithStart(start), nil
	}

	end, err := strconv.Atoi(endPart)
	if err != nil || end < start {
		return Cursor{}, fmt.Errorf("failed to decode cursor end value '%s'", endPart)
	}

	return NewCursor(start, end), nil
}

// String - implements fmt.Stringer. Returns a base64 token which DecodeCursor
// turns back into the same window, so a listing can be resumed later.
func (c Cursor) String() string {
	raw := strconv.Itoa(c.start)
	if c.bounded {
		raw += "-" + strconv.Itoa(c.end)
	}

	return _encoder.EncodeToString([]byte(raw))
}

// Start returns the current offset.
func (c Cursor) Start() int {
	return c.start
}

// End returns the upper bound and whether the cursor is bounded at all.
func (c Cursor) End() (int, bool) {
	return c.end, c.bounded
}

// IsBounded returns true if the cursor has an upper bound.
func (c Cursor) IsBounded() bool {
	return c.bounded
}

// CanProgress returns true if more elements may exist inside the window.
func (c Cursor) CanProgress() bool {
	if !c.bounded {
		return true
	}

	return c.end > c.start
}

// Limit returns end - start for bounded cursors.
func (c Cursor) Limit() (int, bool) {
	if !c.bounded {
		return 0, false
	}

	return max(c.end-c.start, 0), true
}

// Advance moves start forward by n elements, never past end, and returns the
// consumed window [previous start, new start).
func (c *Cursor) Advance(n int) Cursor {
	previous := c.start

	next := c.start + max(n, 0)
	if c.bounded {
		next = max(min(next, c.end), c.start)
	}
	c.start = next

	return NewCursor(previous, c.start)
}

// Kill closes the window at the current offset. The cursor can no longer
// progress. Calling Kill again changes nothing.
func (c *Cursor) Kill() {
	c.end = c.start
	c.bounded = true
}

// Query translates the window into limit/offset query parameters. The limit is
// capped at maxLimit; an unbounded window asks for maxLimit elements.
func (c Cursor) Query(maxLimit int) PageQuery {
	return PageQuery{
		Limit:  PageLimit(c, maxLimit),
		Offset: c.start,
	}
}

var _ fmt.Stringer = Cursor{}
