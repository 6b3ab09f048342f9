package bvh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntervalUnion(t *testing.T) {
	a := NewInterval(0, 10)
	b := NewInterval(5, 20)
	require.Equal(t, NewInterval(0, 25), a.Union(b))
}

func TestIntervalContains(t *testing.T) {
	outer := NewInterval(0, 10)
	require.True(t, outer.Contains(NewInterval(1, 8)))
	require.True(t, outer.Contains(outer))
	require.False(t, outer.Contains(NewInterval(-1, 8)))
}

func TestIntervalOverlaps(t *testing.T) {
	a := NewInterval(0, 10)
	require.True(t, a.Overlaps(NewInterval(10, 5))) // touching, inclusive
	require.False(t, a.Overlaps(NewInterval(10.1, 5)))
}

func TestIntervalExpand(t *testing.T) {
	i := NewInterval(0, 10)
	require.Equal(t, NewInterval(-2, 14), i.Expand(2))
}

func TestIntervalExpandDirectional(t *testing.T) {
	i := NewInterval(0, 10)
	require.Equal(t, NewInterval(0, 14), i.ExpandDirectional(1, 4))
	require.Equal(t, NewInterval(-4, 14), i.ExpandDirectional(-1, 4))
}

func TestIntervalTreeScenarios(t *testing.T) {
	tr, err := NewIntervalTree[string]()
	require.NoError(t, err)

	h := tr.Add(NewInterval(0, 10), "A")
	checkInvariants(t, tr)
	require.Equal(t, NewInterval(-2, 14), tr.GetKey(h))

	tr.Add(NewInterval(100, 10), "B")
	checkInvariants(t, tr)

	var got []string
	q := tr.Query(NewIntervalPoint(1))
	for q.Next() {
		item, _ := q.Item()
		got = append(got, item)
	}
	require.Equal(t, []string{"A"}, got)

	got = nil
	q = tr.Query(NewIntervalPoint(1000))
	for q.Next() {
		item, _ := q.Item()
		got = append(got, item)
	}
	require.Empty(t, got)
}
