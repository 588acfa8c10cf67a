package deployer

import "sort"

////////////////////////////////////////////////////////////////////////////////
// Hierarchy engine: role forest, reachability, deterministic order
////////////////////////////////////////////////////////////////////////////////

// parentOf resolves the effective parent index of role i. A nil, out-of-range
// or self admin link all collapse to "root" (-1); the validator still reports
// the malformed links separately.
func parentOf(roles []Role, i int) int {
	r := roles[i]
	if r.AdminRole == nil {
		return -1
	}
	p := *r.AdminRole
	if p < 0 || p >= len(roles) || p == i {
		return -1
	}
	return p
}

// ChildrenByParent builds the adjacency map of the role forest plus the list
// of root indices. Children lists come out in ascending index order.
func ChildrenByParent(roles []Role) (children map[int][]int, roots []int) {
	children = make(map[int][]int)
	roots = []int{}
	for i := range roles {
		p := parentOf(roles, i)
		if p == -1 {
			roots = append(roots, i)
			continue
		}
		children[p] = append(children[p], i)
	}
	return children, roots
}

// Descendants collects everything reachable below r via admin links. The
// visited set terminates traversal even on a malformed cyclic state.
func Descendants(roles []Role, r int) []int {
	if r < 0 || r >= len(roles) {
		return []int{}
	}
	children, _ := ChildrenByParent(roles)
	visited := make(map[int]bool)
	out := []int{}
	stack := append([]int{}, children[r]...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			continue
		}
		visited[n] = true
		out = append(out, n)
		stack = append(stack, children[n]...)
	}
	sort.Ints(out)
	return out
}

// Ancestors walks parent links up from r until a root, an out-of-range link
// or a repeat (cycle guard). The result is ordered nearest parent first.
func Ancestors(roles []Role, r int) []int {
	if r < 0 || r >= len(roles) {
		return []int{}
	}
	seen := map[int]bool{r: true}
	out := []int{}
	cur := r
	for {
		p := parentOf(roles, cur)
		if p == -1 || seen[p] {
			return out
		}
		seen[p] = true
		out = append(out, p)
		cur = p
	}
}

// Depth is the number of ancestors above r; roots sit at depth 0.
func Depth(roles []Role, r int) int {
	return len(Ancestors(roles, r))
}

// CycleReport names every role participating in an admin-link cycle.
type CycleReport struct {
	HasCycle   bool
	CycleRoles []int
}

// DetectCycles runs the standard DFS with a recursion stack over parent
// links. Self links count as cycles of length one.
func DetectCycles(roles []Role) CycleReport {
	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make([]int, len(roles))
	inCycle := make(map[int]bool)

	// rawParent keeps self links visible; parentOf would hide them as roots.
	rawParent := func(i int) int {
		r := roles[i]
		if r.AdminRole == nil {
			return -1
		}
		p := *r.AdminRole
		if p < 0 || p >= len(roles) {
			return -1
		}
		return p
	}

	for start := range roles {
		if state[start] != unvisited {
			continue
		}
		path := []int{}
		cur := start
		for cur != -1 && state[cur] == unvisited {
			state[cur] = inStack
			path = append(path, cur)
			cur = rawParent(cur)
		}
		if cur != -1 && state[cur] == inStack {
			// everything from cur back to the end of path is on the cycle
			hit := false
			for _, n := range path {
				if n == cur {
					hit = true
				}
				if hit {
					inCycle[n] = true
				}
			}
		}
		for _, n := range path {
			state[n] = done
		}
	}

	report := CycleReport{CycleRoles: []int{}}
	for n := range inCycle {
		report.CycleRoles = append(report.CycleRoles, n)
	}
	sort.Ints(report.CycleRoles)
	report.HasCycle = len(report.CycleRoles) > 0
	return report
}

// WouldCreateCycle answers the UI question "may candidateParent administer
// r". True when the edit would close a loop.
func WouldCreateCycle(roles []Role, r, candidateParent int) bool {
	if candidateParent == r {
		return true
	}
	return containsInt(Descendants(roles, r), candidateParent)
}

// ValidParents lists every index that can safely become r's admin: everything
// except r itself and its descendants.
func ValidParents(roles []Role, r int) []int {
	blocked := map[int]bool{r: true}
	for _, d := range Descendants(roles, r) {
		blocked[d] = true
	}
	out := []int{}
	for i := range roles {
		if !blocked[i] {
			out = append(out, i)
		}
	}
	return out
}

// FlatEntry is one visit of the deterministic traversal.
type FlatEntry struct {
	Index int
	Depth int
}

// Flatten performs the deterministic DFS: roots in ascending name order,
// children in ascending name order, depth tracked per visit. Name ties fall
// back to index order so the output is always total.
func Flatten(roles []Role) []FlatEntry {
	children, roots := ChildrenByParent(roles)
	byName := func(list []int) {
		sort.SliceStable(list, func(a, b int) bool {
			if roles[list[a]].Name != roles[list[b]].Name {
				return roles[list[a]].Name < roles[list[b]].Name
			}
			return list[a] < list[b]
		})
	}
	byName(roots)
	for p := range children {
		byName(children[p])
	}

	out := make([]FlatEntry, 0, len(roles))
	visited := make(map[int]bool)
	var walk func(n, depth int)
	walk = func(n, depth int) {
		if visited[n] {
			return
		}
		visited[n] = true
		out = append(out, FlatEntry{Index: n, Depth: depth})
		for _, c := range children[n] {
			walk(c, depth+1)
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
	return out
}

// ReorderByDependency reassigns role indices to the Flatten order and rewrites
// every admin link, voucher reference and permission index through the
// old-to-new map. Parents always precede children afterwards, which the
// external deployment call requires.
func ReorderByDependency(roles []Role, perms PermissionSets) ([]Role, PermissionSets) {
	flat := Flatten(roles)
	oldToNew := make(map[int]int, len(flat))
	for newIdx, entry := range flat {
		oldToNew[entry.Index] = newIdx
	}

	out := make([]Role, len(flat))
	for newIdx, entry := range flat {
		role := roles[entry.Index].clone()
		if role.AdminRole != nil {
			if mapped, ok := oldToNew[*role.AdminRole]; ok && *role.AdminRole != entry.Index {
				role.AdminRole = intptr(mapped)
			} else {
				role.AdminRole = nil
			}
		}
		if mapped, ok := oldToNew[role.Vouching.VoucherRole]; ok {
			role.Vouching.VoucherRole = mapped
		} else {
			role.Vouching.VoucherRole = 0
		}
		out[newIdx] = role
	}

	newPerms := perms
	for _, key := range AllPermissionKeys {
		mapped := []int{}
		for _, idx := range perms.Roles(key) {
			if n, ok := oldToNew[idx]; ok {
				mapped = append(mapped, n)
			}
		}
		newPerms = newPerms.withRoles(key, mapped)
	}
	return out, newPerms
}

// ValidateHierarchy reports every structural violation of the role forest.
// Kinds emitted: hierarchy_cycle, no_root_role, admin_out_of_range,
// self_admin, voucher_out_of_range, vouching_quorum_nonpositive.
func ValidateHierarchy(roles []Role) []*Error {
	errs := []*Error{}

	cyc := DetectCycles(roles)
	if cyc.HasCycle {
		names := make([]string, 0, len(cyc.CycleRoles))
		for _, i := range cyc.CycleRoles {
			names = append(names, roles[i].Name)
		}
		errs = append(errs, errf(KindCycle, "cyclic admin hierarchy involving: %s", joinNames(names)))
	}

	_, roots := ChildrenByParent(roles)
	if len(roles) > 0 && len(roots) == 0 {
		errs = append(errs, errf(KindNoRoot, "no root role: at least one role must have no admin"))
	}

	for i, r := range roles {
		if r.AdminRole != nil {
			p := *r.AdminRole
			if p == i {
				errs = append(errs, roleErrf(KindSelfAdmin, i, "role %q is its own admin", r.Name))
			} else if p < 0 || p >= len(roles) {
				errs = append(errs, roleErrf(KindAdminRange, i, "role %q admin index %d is out of range", r.Name, p))
			}
		}
		if r.Vouching.Enabled && r.Vouching.Quorum <= 0 {
			errs = append(errs, roleErrf(KindVouchQuorum, i, "role %q has vouching enabled with quorum %d, must be at least 1", r.Name, r.Vouching.Quorum))
		}
		// the voucher reference must stay resolvable even while disabled
		if r.Vouching.VoucherRole < 0 || r.Vouching.VoucherRole >= len(roles) {
			errs = append(errs, roleErrf(KindVoucherRange, i, "role %q voucher index %d is out of range", r.Name, r.Vouching.VoucherRole))
		}
	}
	return errs
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
