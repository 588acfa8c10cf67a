package deployer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orgforge/deployer"
)

// =============================================================================
// Hierarchy Engine Tests
// =============================================================================

func ip(n int) *int { return &n }

// chain builds roles with the given names and parent indices (-1 for root).
func chain(names []string, parents []int) []deployer.Role {
	roles := make([]deployer.Role, len(names))
	for i, name := range names {
		roles[i] = deployer.Role{Name: name, CanVote: true}
		if parents[i] >= 0 {
			roles[i].AdminRole = ip(parents[i])
		}
	}
	return roles
}

// TestChildrenAndRoots checks the adjacency build and root bucket.
func TestChildrenAndRoots(t *testing.T) {
	roles := chain([]string{"A", "B", "C", "D"}, []int{-1, 0, 0, -1})
	children, roots := deployer.ChildrenByParent(roles)
	assert.Equal(t, []int{0, 3}, roots)
	assert.Equal(t, []int{1, 2}, children[0])
}

// TestDescendantsAndAncestors walks a three-deep chain both ways.
func TestDescendantsAndAncestors(t *testing.T) {
	roles := chain([]string{"A", "B", "C"}, []int{-1, 0, 1})
	assert.Equal(t, []int{1, 2}, deployer.Descendants(roles, 0))
	assert.Equal(t, []int{2}, deployer.Descendants(roles, 1))
	assert.Equal(t, []int{}, deployer.Descendants(roles, 2))
	assert.Equal(t, []int{1, 0}, deployer.Ancestors(roles, 2))
	assert.Equal(t, 2, deployer.Depth(roles, 2))
	assert.Equal(t, 0, deployer.Depth(roles, 0))
}

// TestWouldCreateCycle reproduces the A->C re-parent question: with B under A
// and C under B, pointing A at C must be rejected and A has no valid parents.
func TestWouldCreateCycle(t *testing.T) {
	roles := chain([]string{"A", "B", "C"}, []int{-1, 0, 1})
	if !deployer.WouldCreateCycle(roles, 0, 2) {
		t.Fatalf("expected cycle for A -> C")
	}
	if !deployer.WouldCreateCycle(roles, 0, 0) {
		t.Fatalf("expected self link to count as a cycle")
	}
	if deployer.WouldCreateCycle(roles, 2, 0) {
		t.Fatalf("C -> A is already the shape of the tree, no cycle")
	}
	assert.Equal(t, []int{}, deployer.ValidParents(roles, 0))
	assert.Equal(t, []int{0, 1}, deployer.ValidParents(roles, 2))
}

// TestDetectCycles checks cycle naming and the self-loop case.
func TestDetectCycles(t *testing.T) {
	clean := chain([]string{"A", "B", "C"}, []int{-1, 0, 1})
	rep := deployer.DetectCycles(clean)
	assert.False(t, rep.HasCycle)
	assert.Empty(t, rep.CycleRoles)

	looped := chain([]string{"A", "B", "C"}, []int{2, 0, 1})
	rep = deployer.DetectCycles(looped)
	assert.True(t, rep.HasCycle)
	assert.Equal(t, []int{0, 1, 2}, rep.CycleRoles)

	selfish := chain([]string{"A", "B"}, []int{-1, 1})
	rep = deployer.DetectCycles(selfish)
	assert.True(t, rep.HasCycle)
	assert.Equal(t, []int{1}, rep.CycleRoles)
}

// TestDescendantsTolerateMalformedState checks traversal terminates on a
// cyclic graph instead of looping.
func TestDescendantsTolerateMalformedState(t *testing.T) {
	looped := chain([]string{"A", "B"}, []int{1, 0})
	// must terminate; content is best-effort on a broken graph
	_ = deployer.Descendants(looped, 0)
	_ = deployer.Ancestors(looped, 0)
}

// TestFlattenOrder checks roots and children visit in ascending name order
// with correct depths.
func TestFlattenOrder(t *testing.T) {
	// two trees: "Zeta"(root) <- "Alpha", and root "Beta" <- "Young", "Old"
	roles := chain([]string{"Zeta", "Alpha", "Beta", "Young", "Old"}, []int{-1, 0, -1, 2, 2})
	flat := deployer.Flatten(roles)
	got := make([]int, len(flat))
	for i, e := range flat {
		got[i] = e.Index
	}
	// Beta tree first (B < Z), children Old before Young
	assert.Equal(t, []int{2, 4, 3, 0, 1}, got)
	assert.Equal(t, 0, flat[0].Depth)
	assert.Equal(t, 1, flat[1].Depth)
	assert.Equal(t, 1, flat[2].Depth)
	assert.Equal(t, 0, flat[3].Depth)
	assert.Equal(t, 1, flat[4].Depth)
}

// TestReorderByDependency checks parents precede children and that every
// index-bearing structure is rewritten through the old->new map.
func TestReorderByDependency(t *testing.T) {
	// "Zed" is the root but sits at index 2; child "Kid" points at it and
	// vouches through index 0.
	roles := chain([]string{"Mid", "Kid", "Zed"}, []int{2, 0, -1})
	roles[1].Vouching = deployer.VouchingPolicy{Enabled: true, Quorum: 1, VoucherRole: 0}
	perms := deployer.PermissionSets{QuickJoin: []int{1, 2}, DDVoting: []int{0}}

	newRoles, newPerms := deployer.ReorderByDependency(roles, perms)
	assert.Equal(t, []string{"Zed", "Mid", "Kid"}, []string{newRoles[0].Name, newRoles[1].Name, newRoles[2].Name})

	// parents precede children
	for i, r := range newRoles {
		if r.AdminRole != nil && *r.AdminRole >= i {
			t.Fatalf("role %d has admin %d at or after itself", i, *r.AdminRole)
		}
	}
	assert.Nil(t, newRoles[0].AdminRole)
	assert.Equal(t, 0, *newRoles[1].AdminRole)
	assert.Equal(t, 1, *newRoles[2].AdminRole)
	// Kid's voucher followed Mid from index 0 to index 1
	assert.Equal(t, 1, newRoles[2].Vouching.VoucherRole)
	// quickJoin held Kid(1)->2 and Zed(2)->0
	assert.Equal(t, []int{0, 2}, newPerms.QuickJoin)
	assert.Equal(t, []int{1}, newPerms.DDVoting)
}

// TestValidateHierarchy checks each distinct error kind surfaces.
func TestValidateHierarchy(t *testing.T) {
	looped := chain([]string{"A", "B"}, []int{1, 0})
	errs := deployer.ValidateHierarchy(looped)
	kinds := kindSet(errs)
	assert.Contains(t, kinds, deployer.KindCycle)
	assert.Contains(t, kinds, deployer.KindNoRoot)

	bad := chain([]string{"A", "B"}, []int{-1, 0})
	bad[0].AdminRole = ip(9)
	bad[1].Vouching = deployer.VouchingPolicy{Enabled: true, Quorum: 0, VoucherRole: 7}
	errs = deployer.ValidateHierarchy(bad)
	kinds = kindSet(errs)
	assert.Contains(t, kinds, deployer.KindAdminRange)
	assert.Contains(t, kinds, deployer.KindVouchQuorum)
	assert.Contains(t, kinds, deployer.KindVoucherRange)

	selfish := chain([]string{"A", "B"}, []int{-1, 1})
	kinds = kindSet(deployer.ValidateHierarchy(selfish))
	assert.Contains(t, kinds, deployer.KindSelfAdmin)
	assert.Contains(t, kinds, deployer.KindCycle)

	// a dangling voucher reference is flagged even while vouching is disabled
	stale := chain([]string{"A", "B"}, []int{-1, 0})
	stale[1].Vouching = deployer.VouchingPolicy{Enabled: false, Quorum: 1, VoucherRole: 4}
	kinds = kindSet(deployer.ValidateHierarchy(stale))
	assert.Contains(t, kinds, deployer.KindVoucherRange)
	assert.NotContains(t, kinds, deployer.KindVouchQuorum)
}

func kindSet(errs []*deployer.Error) map[deployer.Kind]bool {
	out := map[deployer.Kind]bool{}
	for _, e := range errs {
		out[e.Kind] = true
	}
	return out
}
