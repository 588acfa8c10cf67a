package deployer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orgforge/deployer"
)

// =============================================================================
// Bitmap Codec Tests
// =============================================================================

// TestBitmapRoundTrip checks that toIndices(toBitmap(L)) is the sorted input.
func TestBitmapRoundTrip(t *testing.T) {
	cases := [][]int{
		{},
		{0},
		{31},
		{0, 31},
		{5, 1, 9, 2},
		{7, 7, 7}, // duplicates collapse to one bit
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	}
	expected := [][]int{
		{},
		{0},
		{31},
		{0, 31},
		{1, 2, 5, 9},
		{7},
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	}
	for i, in := range cases {
		b := deployer.ToBitmap(in)
		assert.Equal(t, expected[i], deployer.ToIndices(b), "case %d", i)
		assert.Equal(t, len(expected[i]), b.Popcount(), "popcount case %d", i)
	}
}

// TestBitmapDropsOutOfRange checks that out-of-range indices vanish silently.
func TestBitmapDropsOutOfRange(t *testing.T) {
	b := deployer.ToBitmap([]int{-1, 0, 32, 99, 3})
	assert.Equal(t, []int{0, 3}, deployer.ToIndices(b))
}

// TestBitmapOps checks has/add/remove/toggle including out-of-range no-ops.
func TestBitmapOps(t *testing.T) {
	var b deployer.RoleBitmap
	b = b.Add(4)
	if !b.Has(4) {
		t.Fatalf("expected bit 4 set")
	}
	b = b.Toggle(4)
	if b.Has(4) {
		t.Fatalf("expected bit 4 cleared after toggle")
	}
	b = b.Add(0).Add(1)
	b = b.Remove(0)
	assert.Equal(t, []int{1}, deployer.ToIndices(b))

	// out-of-range is a no-op everywhere
	assert.Equal(t, b, b.Add(32))
	assert.Equal(t, b, b.Remove(-1))
	assert.Equal(t, b, b.Toggle(64))
	assert.False(t, b.Has(-5))
}

// TestFullMask checks the first-n mask including the clamped edges.
func TestFullMask(t *testing.T) {
	assert.Equal(t, deployer.RoleBitmap(0), deployer.FullMask(0))
	assert.Equal(t, deployer.RoleBitmap(0), deployer.FullMask(-3))
	assert.Equal(t, deployer.RoleBitmap(0b111), deployer.FullMask(3))
	assert.Equal(t, 32, deployer.FullMask(32).Popcount())
	assert.Equal(t, 32, deployer.FullMask(99).Popcount())
}
