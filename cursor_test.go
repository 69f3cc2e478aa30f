package s2pager

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_Cursor_Constructors(t *testing.T) {
	tests := []struct {
		name            string
		cursor          Cursor
		expectedStart   int
		expectedBounded bool
		expectedLimit   int
		canProgress     bool
	}{
		{"explicit window", NewCursor(5, 10), 5, true, 5, true},
		{"empty window", NewCursor(7, 7), 7, true, 0, false},
		{"inverted window cannot progress", NewCursor(10, 5), 10, true, 0, false},
		{"unbounded from offset", WithStart(3), 3, false, 0, true},
		{"limited", Limited(20, 40), 20, true, 40, true},
		{"zero value is unbounded from zero", Cursor{}, 0, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expectedStart, tt.cursor.Start())
			require.Equal(t, tt.expectedBounded, tt.cursor.IsBounded())
			require.Equal(t, tt.canProgress, tt.cursor.CanProgress())

			limit, bounded := tt.cursor.Limit()
			require.Equal(t, tt.expectedBounded, bounded)
			require.Equal(t, tt.expectedLimit, limit)
		})
	}
}

func Test_Cursor_Advance(t *testing.T) {
	tests := []struct {
		name             string
		cursor           Cursor
		n                int
		expectedStart    int
		expectedConsumed Cursor
		canProgress      bool
	}{
		{"bounded advance inside window", NewCursor(0, 40), 25, 25, NewCursor(0, 25), true},
		{"bounded advance clamps to end", NewCursor(30, 40), 25, 40, NewCursor(30, 40), false},
		{"bounded advance exactly to end", Limited(0, 40), 40, 40, NewCursor(0, 40), false},
		{"unbounded advance", WithStart(10), 40, 50, NewCursor(10, 50), true},
		{"zero advance", WithStart(10), 0, 10, NewCursor(10, 10), true},
		{"negative advance never moves back", WithStart(10), -5, 10, NewCursor(10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.cursor
			consumed := c.Advance(tt.n)

			require.Equal(t, tt.expectedStart, c.Start())
			require.Equal(t, tt.expectedConsumed, consumed)
			require.Equal(t, tt.canProgress, c.CanProgress())
		})
	}
}

func Test_Cursor_Kill(t *testing.T) {
	c := WithStart(12)
	c.Kill()

	end, bounded := c.End()
	require.True(t, bounded)
	require.Equal(t, 12, end)
	require.False(t, c.CanProgress())

	once := c
	c.Kill()
	require.Equal(t, once, c, "kill must be idempotent")
}

func Test_Cursor_Token(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Cursor
		wantErr  bool
	}{
		{"empty token", "", WithStart(0), false},
		{"unbounded", base64.RawURLEncoding.EncodeToString([]byte("15")), WithStart(15), false},
		{"bounded", base64.RawURLEncoding.EncodeToString([]byte("15-55")), NewCursor(15, 55), false},
		{"not base64", "!!!", Cursor{}, true},
		{"not a number", base64.RawURLEncoding.EncodeToString([]byte("abc")), Cursor{}, true},
		{"negative start", base64.RawURLEncoding.EncodeToString([]byte("-3")), Cursor{}, true},
		{"end before start", base64.RawURLEncoding.EncodeToString([]byte("10-5")), Cursor{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := DecodeCursor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, c)
		})
	}

	t.Run("string round trip", func(t *testing.T) {
		for _, c := range []Cursor{WithStart(0), WithStart(99), NewCursor(3, 8), Limited(40, 40)} {
			decoded, err := DecodeCursor(c.String())
			require.NoError(t, err)
			require.Equal(t, c, decoded)
		}
	})
}

func Test_Cursor_Query(t *testing.T) {
	tests := []struct {
		name     string
		cursor   Cursor
		maxLimit int
		expected PageQuery
	}{
		{"unbounded asks for the ceiling", WithStart(80), 40, PageQuery{Limit: 40, Offset: 80}},
		{"small bounded window", Limited(10, 5), 40, PageQuery{Limit: 5, Offset: 10}},
		{"large bounded window is capped", Limited(0, 100), 40, PageQuery{Limit: 40, Offset: 0}},
		{"configurable ceiling", Limited(0, 100), 75, PageQuery{Limit: 75, Offset: 0}},
		{"no ceiling", WithStart(0), NoPageLimit, PageQuery{Limit: NoPageLimit, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cursor.Query(tt.maxLimit))
		})
	}
}

func Test_Cursor_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.IntRange(0, 10_000).Draw(t, "start")
		n := rapid.IntRange(0, 10_000).Draw(t, "n")

		if rapid.Bool().Draw(t, "bounded") {
			end := start + rapid.IntRange(0, 10_000).Draw(t, "size")
			c := NewCursor(start, end)
			c.Advance(n)

			if c.Start() != min(start+n, end) {
				t.Fatalf("start after advance: got %d want %d", c.Start(), min(start+n, end))
			}
			if c.CanProgress() != (c.Start() < end) {
				t.Fatalf("can progress mismatch at start=%d end=%d", c.Start(), end)
			}
			return
		}

		c := WithStart(start)
		c.Advance(n)

		if c.Start() != start+n {
			t.Fatalf("start after advance: got %d want %d", c.Start(), start+n)
		}
		if !c.CanProgress() {
			t.Fatalf("unbounded cursor must always progress")
		}
	})
}
