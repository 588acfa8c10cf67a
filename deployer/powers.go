package deployer

////////////////////////////////////////////////////////////////////////////////
// Power bundles: the 3-choice view over the nine permission sets
////////////////////////////////////////////////////////////////////////////////

// Bundle names the fixed power bundles.
type Bundle string

const (
	BundleAdmin   Bundle = "admin"
	BundleMember  Bundle = "member"
	BundleCreator Bundle = "creator"
)

// bundleKeys is the fixed catalog: which permission sets each bundle unions.
// The nine sets stay the single source of truth; a bundle is held only when
// the role sits in every constituent set.
var bundleKeys = map[Bundle][]PermissionKey{
	BundleAdmin:   {PermTokenApprover, PermTaskCreator, PermEducationCreator, PermDDCreator},
	BundleMember:  {PermQuickJoin, PermTokenMember, PermEducationMember, PermDDVoting},
	BundleCreator: {PermHybridProposalCreator},
}

// AllBundles is the canonical bundle order for summaries.
var AllBundles = []Bundle{BundleAdmin, BundleMember, BundleCreator}

// BundleKeys exposes the constituent permission keys of a bundle.
func BundleKeys(b Bundle) []PermissionKey {
	return append([]PermissionKey(nil), bundleKeys[b]...)
}

// RoleHasBundle reports whether the role index is present in every
// constituent permission set of the bundle.
func RoleHasBundle(perms PermissionSets, b Bundle, role int) bool {
	keys := bundleKeys[b]
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !containsInt(perms.Roles(k), role) {
			return false
		}
	}
	return true
}

// SetBundleForRole is the idempotent write-through: it adds the role to every
// constituent set, or removes it from every one. Results come back sorted and
// deduplicated like all permission writes.
func SetBundleForRole(perms PermissionSets, b Bundle, role int, enabled bool) PermissionSets {
	out := perms
	for _, k := range bundleKeys[b] {
		list := out.Roles(k)
		if enabled {
			list = append(append([]int{}, list...), role)
		} else {
			list = removeInt(list, role)
		}
		out = out.withRoles(k, list)
	}
	return out
}

// ToggleBundleForRole flips bundle possession atomically: a role that fully
// has the bundle loses every constituent permission, anything less gains all
// of them.
func ToggleBundleForRole(perms PermissionSets, b Bundle, role int) PermissionSets {
	return SetBundleForRole(perms, b, role, !RoleHasBundle(perms, b, role))
}
