package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Orderings_validate(t *testing.T) {
	tests := []struct {
		name string
		ord  Orderings
		ok   bool
	}{
		{"empty returns error", Orderings{}, false},
		{"invalid direction", Orderings{{Column: "position", Direction: "bad"}}, false},
		{"forbidden symbols", Orderings{{Column: "position; DROP TABLE x", Direction: DirectionASC}}, false},
		{"empty column", Orderings{{Column: "", Direction: DirectionASC}}, false},
		{"valid list", Orderings{{Column: "position", Direction: DirectionASC}}, true},
	}
	for _, tt := range tests {
		if err := tt.ord.validate(); (err == nil) != tt.ok {
			t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
		}
	}
}

func Test_Orderings_ToSQL(t *testing.T) {
	o := Orderings{{Column: "position", Direction: DirectionASC}, {Column: "fetched_at", Direction: DirectionDESC}}

	require.Equal(t, []string{"position ASC", "fetched_at DESC"}, o.ToSQLSlice())
	require.Equal(t, "position ASC, fetched_at DESC", o.ToSQL())
	require.True(t, o.Has("fetched_at"))
	require.False(t, o.Has("id"))
}

func Test_ParseSort(t *testing.T) {
	tests := []struct {
		name  string
		in    []string
		ok    bool
		first OrderBy
	}{
		{"invalid format", []string{"position"}, false, OrderBy{}},
		{"unknown alias", []string{"positon asc"}, false, OrderBy{}},
		{"invalid direction", []string{"position up"}, false, OrderBy{}},
		{"valid asc", []string{"position asc"}, true, OrderBy{Column: "position", Direction: DirectionASC}},
		{"valid desc with spaces", []string{"  fetched   DESC "}, true, OrderBy{Column: "fetched_at", Direction: DirectionDESC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.in, SortColumns)
			if (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
				return
			}
			if tt.ok {
				if len(got) == 0 || got[0] != tt.first {
					t.Errorf("%s: first=%v want %v", tt.name, got, tt.first)
				}
			}
		})
	}
}

func Test_ParseSort_SuggestsClosestAlias(t *testing.T) {
	_, err := ParseSort([]string{"fetchd asc"}, SortColumns)
	require.EqualError(t, err, "invalid column alias 'fetchd'. closest: 'fetched'")
}

func Test_closestAlias(t *testing.T) {
	require.Equal(t, "position", closestAlias("positon", []string{"id", "fetched", "position"}))
	require.Equal(t, "", closestAlias("x", nil))
}
