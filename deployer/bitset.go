package deployer

import "math/bits"

////////////////////////////////////////////////////////////////////////////////
// Role bitmap codec
////////////////////////////////////////////////////////////////////////////////

// MaxRoles is the bitmap width and therefore the hard role cap.
const MaxRoles = 32

// RoleBitmap packs a role-index set into 32 bits; bit i set means role i is
// in the set. This is the wire form the deployment call consumes.
type RoleBitmap uint32

// ToBitmap sets bit i for each listed index. Out-of-range indices are dropped
// silently so the codec stays total.
func ToBitmap(indices []int) RoleBitmap {
	var b RoleBitmap
	for _, i := range indices {
		if i < 0 || i >= MaxRoles {
			continue
		}
		b |= 1 << uint(i)
	}
	return b
}

// ToIndices unpacks the bitmap into ascending indices.
func ToIndices(b RoleBitmap) []int {
	out := make([]int, 0, bits.OnesCount32(uint32(b)))
	for i := 0; i < MaxRoles; i++ {
		if b&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// Has reports whether bit i is set; out-of-range is simply false.
func (b RoleBitmap) Has(i int) bool {
	if i < 0 || i >= MaxRoles {
		return false
	}
	return b&(1<<uint(i)) != 0
}

// Add returns the bitmap with bit i set; out-of-range is a no-op.
func (b RoleBitmap) Add(i int) RoleBitmap {
	if i < 0 || i >= MaxRoles {
		return b
	}
	return b | 1<<uint(i)
}

// Remove returns the bitmap with bit i cleared; out-of-range is a no-op.
func (b RoleBitmap) Remove(i int) RoleBitmap {
	if i < 0 || i >= MaxRoles {
		return b
	}
	return b &^ (1 << uint(i))
}

// Toggle flips bit i; out-of-range is a no-op.
func (b RoleBitmap) Toggle(i int) RoleBitmap {
	if i < 0 || i >= MaxRoles {
		return b
	}
	return b ^ 1<<uint(i)
}

// Popcount counts set bits.
func (b RoleBitmap) Popcount() int {
	return bits.OnesCount32(uint32(b))
}

// FullMask returns a bitmap with the first n bits set, clamped to the width.
func FullMask(n int) RoleBitmap {
	if n <= 0 {
		return 0
	}
	if n >= MaxRoles {
		return RoleBitmap(^uint32(0))
	}
	return RoleBitmap(1<<uint(n)) - 1
}
