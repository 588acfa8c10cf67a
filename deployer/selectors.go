package deployer

////////////////////////////////////////////////////////////////////////////////
// Selectors: read-only derivations for the wizard UI
////////////////////////////////////////////////////////////////////////////////

// ActiveTemplate resolves the state's template id against the registry.
// Returns nil when no template is selected (or the id is unknown).
func ActiveTemplate(s State) *Template {
	if s.Org.TemplateID == "" {
		return nil
	}
	t, err := GetTemplate(s.Org.TemplateID)
	if err != nil {
		return nil
	}
	return t
}

// JoinMethod is how a candidate ends up wearing a role.
type JoinMethod string

const (
	JoinVouching   JoinMethod = "vouching"
	JoinOpen       JoinMethod = "open"
	JoinInvitation JoinMethod = "invitation"
)

// RoleJoinMethod derives the join method: vouching wins when enabled, then
// open when the role sits in quickJoin, else invitation-only.
func RoleJoinMethod(s State, role int) JoinMethod {
	if role < 0 || role >= len(s.Roles) {
		return JoinInvitation
	}
	if s.Roles[role].Vouching.Enabled {
		return JoinVouching
	}
	if containsInt(s.Permissions.QuickJoin, role) {
		return JoinOpen
	}
	return JoinInvitation
}

// RoleNamesInPermission lists the names of the roles currently in a named
// permission set, in ascending index order.
func RoleNamesInPermission(s State, key PermissionKey) []string {
	out := []string{}
	for _, idx := range s.Permissions.Roles(key) {
		if idx >= 0 && idx < len(s.Roles) {
			out = append(out, s.Roles[idx].Name)
		}
	}
	return out
}

// BundleSummary reports which power bundles a role fully holds, in canonical
// bundle order.
func BundleSummary(s State, role int) []Bundle {
	out := []Bundle{}
	for _, b := range AllBundles {
		if RoleHasBundle(s.Permissions, b, role) {
			out = append(out, b)
		}
	}
	return out
}

// ClassParticipantCount estimates how many roles participate in one voting
// class: direct classes count the voting-enabled roles, balance classes count
// the token members.
func ClassParticipantCount(s State, classIndex int) int {
	if classIndex < 0 || classIndex >= len(s.Voting.Classes) {
		return 0
	}
	c := s.Voting.Classes[classIndex]
	if c.Strategy == StrategyErcBalance {
		return len(s.Permissions.TokenMember)
	}
	count := 0
	for _, r := range s.Roles {
		if r.CanVote {
			count++
		}
	}
	return count
}

// VoterNames lists the names of voting-enabled roles, in index order.
func VoterNames(s State) []string {
	out := []string{}
	for _, r := range s.Roles {
		if r.CanVote {
			out = append(out, r.Name)
		}
	}
	return out
}

// WouldSliderChange reports whether applying the slider value would alter the
// current voting configuration in any observable way (mode, weights, quorums
// or class shape). Class identities are ignored; they are fresh per emit.
func WouldSliderChange(s State, slider int) bool {
	next := SliderToVoting(slider)
	cur := s.Voting
	if next.Mode != cur.Mode ||
		next.DemocracyWeight != cur.DemocracyWeight ||
		next.ParticipationWeight != cur.ParticipationWeight ||
		next.HybridQuorum != cur.HybridQuorum ||
		next.DDQuorum != cur.DDQuorum ||
		len(next.Classes) != len(cur.Classes) {
		return true
	}
	for i := range next.Classes {
		if next.Classes[i].Strategy != cur.Classes[i].Strategy ||
			next.Classes[i].SlicePct != cur.Classes[i].SlicePct {
			return true
		}
	}
	return false
}
