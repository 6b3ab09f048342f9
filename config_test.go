package bvh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := newConfig(nil)
	require.NoError(t, err)
	require.Equal(t, defaultInitialCapacity, cfg.InitialCapacity)
	require.Equal(t, defaultExpandConstant, cfg.ExpandConstant)
	require.Equal(t, defaultMoveConstant, cfg.MoveConstant)
	require.NotNil(t, cfg.Logger)
}

func TestConfigRejectsInvalidValues(t *testing.T) {
	_, err := newConfig([]Option{WithInitialCapacity(0)})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = newConfig([]Option{WithExpandConstant(-1)})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = newConfig([]Option{WithMoveConstant(0)})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewAABBTreeAppliesOptions(t *testing.T) {
	tr, err := NewAABBTree[int](WithInitialCapacity(8), WithExpandConstant(1))
	require.NoError(t, err)
	require.Equal(t, 8, len(tr.a.nodes))

	h := tr.Add(NewRect(0, 0, 10, 10), 1)
	require.Equal(t, NewRect(-1, -1, 12, 12), tr.GetKey(h))
}

func TestNewAABBTreeRejectsInvalidOptions(t *testing.T) {
	_, err := NewAABBTree[int](WithInitialCapacity(-1))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestClearResetsTree(t *testing.T) {
	tr, err := NewAABBTree[int]()
	require.NoError(t, err)
	tr.Add(NewRect(0, 0, 1, 1), 1)
	tr.Add(NewRect(5, 5, 1, 1), 2)

	tr.Clear()
	require.Equal(t, 0, tr.Count())
	require.Equal(t, 0, tr.ItemCount())
	_, ok := tr.Bounds()
	require.False(t, ok)

	h := tr.Add(NewRect(0, 0, 1, 1), 3)
	require.Equal(t, 3, tr.GetItem(h))
}

func TestClearWithExplicitCapacity(t *testing.T) {
	tr, err := NewAABBTree[int]()
	require.NoError(t, err)
	tr.Clear(WithInitialCapacity(16))
	require.Equal(t, 16, len(tr.a.nodes))
}

func TestClearRetunesExpandConstant(t *testing.T) {
	tr, err := NewAABBTree[int]()
	require.NoError(t, err)
	tr.Clear(WithExpandConstant(1))

	h := tr.Add(NewRect(0, 0, 10, 10), 1)
	require.Equal(t, NewRect(-1, -1, 12, 12), tr.GetKey(h))
}

func TestClearKeepsCurrentTunablesWhenUnset(t *testing.T) {
	tr, err := NewAABBTree[int](WithExpandConstant(1))
	require.NoError(t, err)
	tr.Add(NewRect(0, 0, 1, 1), 1)

	tr.Clear()

	h := tr.Add(NewRect(0, 0, 10, 10), 2)
	require.Equal(t, NewRect(-1, -1, 12, 12), tr.GetKey(h))
}

func TestClearRejectsInvalidOptionsAndLeavesTreeUnchanged(t *testing.T) {
	tr, err := NewAABBTree[int]()
	require.NoError(t, err)
	tr.Add(NewRect(0, 0, 1, 1), 1)
	v := tr.version

	tr.Clear(WithInitialCapacity(-1))
	require.Equal(t, v, tr.version)
	require.Equal(t, 1, tr.ItemCount())
}
