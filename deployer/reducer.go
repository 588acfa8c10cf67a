package deployer

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////////////
// Reducer: the single state transition function
////////////////////////////////////////////////////////////////////////////////

// Reduce consumes one action and returns the next state. It is total: every
// input yields a state, refusals leave the tree unchanged apart from a note
// in the error map, and unknown actions are warned about and dropped.
func Reduce(s State, action Action) State {
	switch a := action.(type) {

	// --- navigation ---
	case SetStep:
		out := cloneState(s)
		out.Step = clampInt(a.Step, StepWelcome, lastStep)
		return out
	case NextStep:
		out := cloneState(s)
		out.Step = clampInt(s.Step+1, StepWelcome, lastStep)
		return out
	case PrevStep:
		out := cloneState(s)
		out.Step = clampInt(s.Step-1, StepWelcome, lastStep)
		return out

	// --- organization metadata ---
	case SetOrgName:
		out := cloneState(s)
		out.Org.Name = a.Name
		return out
	case SetOrgDescription:
		out := cloneState(s)
		out.Org.Description = a.Description
		return out
	case SetLogo:
		out := cloneState(s)
		out.Org.LogoCID = a.CID
		return out
	case SetInfoHash:
		out := cloneState(s)
		out.Org.InfoCID = a.CID
		return out
	case SetDeployerUsername:
		out := cloneState(s)
		out.Org.DeployerUsername = a.Username
		return out
	case SetAutoUpgrade:
		out := cloneState(s)
		out.Org.AutoUpgrade = a.Enabled
		return out
	case AddLink:
		out := cloneState(s)
		out.Org.Links = append(out.Org.Links, OrgLink{Label: a.Label, URL: a.URL})
		return out
	case RemoveLink:
		if a.Index < 0 || a.Index >= len(s.Org.Links) {
			return s
		}
		out := cloneState(s)
		out.Org.Links = append(out.Org.Links[:a.Index], out.Org.Links[a.Index+1:]...)
		return out
	case UpdateLink:
		if a.Index < 0 || a.Index >= len(s.Org.Links) {
			return s
		}
		out := cloneState(s)
		out.Org.Links[a.Index] = OrgLink{Label: a.Label, URL: a.URL}
		return out

	// --- template selection ---
	case SelectTemplate:
		tpl, err := GetTemplate(a.ID)
		if err != nil {
			return refuse(s, KindUnknownTemplate, err.Error())
		}
		return SeedFromTemplate(s, tpl)

	// --- roles ---
	case AddRole:
		if len(s.Roles) >= MaxRoles {
			return refuse(s, KindRoleCap, fmt.Sprintf("cannot add role: cap of %d reached", MaxRoles))
		}
		out := cloneState(s)
		name := a.Name
		if name == "" {
			name = fmt.Sprintf("New Role %d", len(s.Roles)+1)
		}
		out.Roles = append(out.Roles, defaultRole(name, len(s.Roles) == 0))
		return out

	case UpdateRole:
		if a.Index < 0 || a.Index >= len(s.Roles) {
			return s
		}
		out := cloneState(s)
		r := &out.Roles[a.Index]
		if a.Patch.Name != nil {
			r.Name = *a.Patch.Name
		}
		if a.Patch.Image != nil {
			r.Image = *a.Patch.Image
		}
		if a.Patch.CanVote != nil {
			r.CanVote = *a.Patch.CanVote
		}
		return out

	case RemoveRole:
		if a.Index < 0 || a.Index >= len(s.Roles) {
			return s
		}
		if len(s.Roles) == 1 {
			return refuse(s, KindLastRole, "cannot remove the last role")
		}
		return removeRoleAt(s, a.Index)

	case ReorderRoles:
		// wholesale replacement; the caller owns correctness, the validator
		// will catch violations.
		out := cloneState(s)
		out.Roles = make([]Role, len(a.Roles))
		for i, r := range a.Roles {
			out.Roles[i] = r.clone()
		}
		return out

	case UpdateRoleHierarchy:
		if a.Index < 0 || a.Index >= len(s.Roles) {
			return s
		}
		out := cloneState(s)
		if a.AdminIndex == nil {
			out.Roles[a.Index].AdminRole = nil
		} else {
			out.Roles[a.Index].AdminRole = intptr(*a.AdminIndex)
		}
		return out

	case UpdateRoleVouching:
		if a.Index < 0 || a.Index >= len(s.Roles) {
			return s
		}
		out := cloneState(s)
		v := &out.Roles[a.Index].Vouching
		if a.Patch.Enabled != nil {
			v.Enabled = *a.Patch.Enabled
		}
		if a.Patch.Quorum != nil {
			v.Quorum = *a.Patch.Quorum
		}
		if a.Patch.VoucherRole != nil {
			v.VoucherRole = *a.Patch.VoucherRole
		}
		if a.Patch.CombineWithHierarchy != nil {
			v.CombineWithHierarchy = *a.Patch.CombineWithHierarchy
		}
		return out

	case UpdateRoleDistribution:
		if a.Index < 0 || a.Index >= len(s.Roles) {
			return s
		}
		out := cloneState(s)
		d := &out.Roles[a.Index].Distribution
		if a.Patch.MintToDeployer != nil {
			d.MintToDeployer = *a.Patch.MintToDeployer
		}
		if a.Patch.MintToExecutor != nil {
			d.MintToExecutor = *a.Patch.MintToExecutor
		}
		if a.Patch.AdditionalAddresses != nil {
			d.AdditionalAddresses = append([]string(nil), *a.Patch.AdditionalAddresses...)
		}
		if a.Patch.AdditionalUsernames != nil {
			d.AdditionalUsernames = append([]string(nil), *a.Patch.AdditionalUsernames...)
		}
		return out

	case UpdateRoleHatConfig:
		if a.Index < 0 || a.Index >= len(s.Roles) {
			return s
		}
		out := cloneState(s)
		h := &out.Roles[a.Index].Hat
		if a.Patch.MaxSupply != nil {
			h.MaxSupply = *a.Patch.MaxSupply
		}
		if a.Patch.Mutable != nil {
			h.Mutable = *a.Patch.Mutable
		}
		return out

	// --- permissions ---
	case TogglePermission:
		out := cloneState(s)
		list := out.Permissions.Roles(a.Key)
		if containsInt(list, a.Index) {
			list = removeInt(list, a.Index)
		} else {
			list = append(list, a.Index)
		}
		out.Permissions = out.Permissions.withRoles(a.Key, list)
		return out

	case SetPermission:
		out := cloneState(s)
		list := out.Permissions.Roles(a.Key)
		if a.Enabled {
			list = append(list, a.Index)
		} else {
			list = removeInt(list, a.Index)
		}
		out.Permissions = out.Permissions.withRoles(a.Key, list)
		return out

	case SetPermissionRoles:
		out := cloneState(s)
		out.Permissions = out.Permissions.withRoles(a.Key, a.Roles)
		return out

	case GrantAllForRole:
		out := cloneState(s)
		for _, k := range AllPermissionKeys {
			out.Permissions = out.Permissions.withRoles(k, append(out.Permissions.Roles(k), a.Index))
		}
		return out

	case RevokeAllForRole:
		out := cloneState(s)
		for _, k := range AllPermissionKeys {
			out.Permissions = out.Permissions.withRoles(k, removeInt(out.Permissions.Roles(k), a.Index))
		}
		return out

	case ToggleBundle:
		out := cloneState(s)
		out.Permissions = ToggleBundleForRole(out.Permissions, a.Bundle, a.Index)
		return out

	// --- voting ---
	case SetVotingMode:
		out := cloneState(s)
		out.Voting.Mode = a.Mode
		if a.Mode == ModeDirect {
			out.Voting.Classes = []VotingClass{freshClass(StrategyDirect, 100)}
		} else {
			out.Voting.Classes = []VotingClass{
				freshClass(StrategyDirect, out.Voting.DemocracyWeight),
				freshClass(StrategyErcBalance, out.Voting.ParticipationWeight),
			}
		}
		return out

	case SetVotingQuorum:
		out := cloneState(s)
		if a.HybridQuorum != nil {
			out.Voting.HybridQuorum = *a.HybridQuorum
		}
		if a.DDQuorum != nil {
			out.Voting.DDQuorum = *a.DDQuorum
		}
		return out

	case UpdateVoting:
		out := cloneState(s)
		v := &out.Voting
		if a.Patch.Mode != nil {
			v.Mode = *a.Patch.Mode
		}
		if a.Patch.HybridQuorum != nil {
			v.HybridQuorum = *a.Patch.HybridQuorum
		}
		if a.Patch.DDQuorum != nil {
			v.DDQuorum = *a.Patch.DDQuorum
		}
		if a.Patch.Quadratic != nil {
			v.Quadratic = *a.Patch.Quadratic
		}
		if a.Patch.DemocracyWeight != nil {
			v.DemocracyWeight = *a.Patch.DemocracyWeight
		}
		if a.Patch.ParticipationWeight != nil {
			v.ParticipationWeight = *a.Patch.ParticipationWeight
		}
		if a.Patch.Classes != nil {
			v.Classes = make([]VotingClass, len(*a.Patch.Classes))
			for i, c := range *a.Patch.Classes {
				v.Classes[i] = c.clone()
			}
		}
		return out

	case AddVotingClass:
		if len(s.Voting.Classes) >= MaxVotingClasses {
			return refuse(s, KindClassCap, fmt.Sprintf("cannot add voting class: cap of %d reached", MaxVotingClasses))
		}
		out := cloneState(s)
		var c VotingClass
		if a.Class != nil {
			c = a.Class.clone()
			if c.ID == "" {
				c.ID = newID()
			}
			if c.Hats == nil {
				c.Hats = []string{}
			}
		} else {
			c = freshClass(StrategyDirect, 0)
		}
		out.Voting.Classes = append(out.Voting.Classes, c)
		return out

	case UpdateVotingClass:
		if a.Index < 0 || a.Index >= len(s.Voting.Classes) {
			return s
		}
		out := cloneState(s)
		c := &out.Voting.Classes[a.Index]
		if a.Patch.Strategy != nil {
			c.Strategy = *a.Patch.Strategy
		}
		if a.Patch.SlicePct != nil {
			c.SlicePct = *a.Patch.SlicePct
		}
		if a.Patch.Quadratic != nil {
			c.Quadratic = *a.Patch.Quadratic
		}
		if a.Patch.MinBalance != nil {
			c.MinBalance = new(big.Int).Set(a.Patch.MinBalance)
		}
		if a.Patch.Asset != nil {
			c.Asset = *a.Patch.Asset
		}
		if a.Patch.Hats != nil {
			c.Hats = append([]string(nil), *a.Patch.Hats...)
		}
		return out

	case RemoveVotingClass:
		if a.Index < 0 || a.Index >= len(s.Voting.Classes) {
			return s
		}
		if len(s.Voting.Classes) == 1 {
			return refuse(s, KindLastClass, "cannot remove the last voting class")
		}
		out := cloneState(s)
		out.Voting.Classes = append(out.Voting.Classes[:a.Index], out.Voting.Classes[a.Index+1:]...)
		return out

	// --- template journey ---
	case SetDiscoveryAnswer:
		out := cloneState(s)
		out.Journey.DiscoveryAnswers[a.QuestionID] = a.Value
		return rematch(out)

	case SetSelfAssessmentAnswer:
		out := cloneState(s)
		out.Journey.AssessmentAnswers[a.QuestionID] = a.Value
		return out

	case NextDiscoveryQuestion:
		out := cloneState(s)
		out.Journey.QuestionIndex = clampInt(s.Journey.QuestionIndex+1, 0, maxQuestionIndex(s))
		return out

	case PrevDiscoveryQuestion:
		out := cloneState(s)
		out.Journey.QuestionIndex = clampInt(s.Journey.QuestionIndex-1, 0, maxQuestionIndex(s))
		return out

	case SetCurrentQuestionIndex:
		out := cloneState(s)
		out.Journey.QuestionIndex = clampInt(a.Index, 0, maxQuestionIndex(s))
		return out

	case SetMatchedVariation:
		out := cloneState(s)
		out.Journey.MatchedVariation = a.ID
		return out

	case RematchVariation:
		return rematch(cloneState(s))

	// --- features ---
	case ToggleFeature:
		out := cloneState(s)
		switch a.Name {
		case "educationHub":
			if a.Value != nil {
				out.Features.EducationHub = *a.Value
			} else {
				out.Features.EducationHub = !out.Features.EducationHub
			}
		case "electionHub":
			if a.Value != nil {
				out.Features.ElectionHub = *a.Value
			} else {
				out.Features.ElectionHub = !out.Features.ElectionHub
			}
		default:
			warnf("unknown feature flag", zap.String("feature", a.Name))
			return s
		}
		return out

	// --- philosophy ---
	case ApplyPhilosophy:
		out := cloneState(s)
		out.Voting = SliderToVoting(a.Slider)
		if a.OverrideHints {
			hints := PermissionHintsFor(a.Slider, out.Roles)
			out.Permissions = out.Permissions.withRoles(PermDDCreator, hints.DDCreator)
			out.Permissions = out.Permissions.withRoles(PermDDVoting, hints.DDVoting)
		}
		return out

	// --- validation / deployment / reset ---
	case SetErrors:
		out := cloneState(s)
		out.Errors = make(map[string]string, len(a.Errors))
		for k, v := range a.Errors {
			out.Errors[k] = v
		}
		return out

	case ClearErrors:
		out := cloneState(s)
		out.Errors = map[string]string{}
		return out

	case SetDeploymentStatus:
		out := cloneState(s)
		if a.Patch.Status != nil {
			out.Deployment.Status = *a.Patch.Status
		}
		if a.Patch.Error != nil {
			out.Deployment.Error = *a.Patch.Error
		}
		if a.Patch.Result != nil {
			out.Deployment.Result = *a.Patch.Result
		}
		return out

	case ResetState:
		return NewState()

	default:
		warnf("unknown action", zap.Any("action", action))
		return s
	}
}

// refuse leaves the tree unchanged apart from recording the refusal kind in
// the error map. Refusals are state, not exceptions.
func refuse(s State, kind Kind, msg string) State {
	out := cloneState(s)
	out.Errors[string(kind)] = msg
	return out
}

// rematch re-runs the variation matcher against the current answers. It is a
// reducer obligation after every discovery answer change.
func rematch(s State) State {
	tpl := ActiveTemplate(s)
	if tpl == nil {
		return s
	}
	v := MatchVariation(tpl, s.Journey.DiscoveryAnswers)
	if v == nil {
		return s
	}
	s.Journey.MatchedVariation = v.ID
	return s
}

// maxQuestionIndex is the last valid discovery question index for the active
// template; an empty journey pins the cursor at 0.
func maxQuestionIndex(s State) int {
	tpl := ActiveTemplate(s)
	if tpl == nil || len(tpl.Questions) == 0 {
		return 0
	}
	return len(tpl.Questions) - 1
}

// removeRoleAt deletes the role and performs the mandatory index rewrite:
// admin links to the removed slot become roots, voucher references fall back
// to the first role, larger indices shift down, and all nine permission sets
// drop the slot the same way.
func removeRoleAt(s State, removed int) State {
	out := cloneState(s)
	out.Roles = append(out.Roles[:removed], out.Roles[removed+1:]...)

	for i := range out.Roles {
		r := &out.Roles[i]
		if r.AdminRole != nil {
			switch {
			case *r.AdminRole == removed:
				r.AdminRole = nil
			case *r.AdminRole > removed:
				r.AdminRole = intptr(*r.AdminRole - 1)
			}
		}
		switch {
		case r.Vouching.VoucherRole == removed:
			r.Vouching.VoucherRole = 0
		case r.Vouching.VoucherRole > removed:
			r.Vouching.VoucherRole--
		}
	}

	for _, k := range AllPermissionKeys {
		shifted := []int{}
		for _, idx := range out.Permissions.Roles(k) {
			switch {
			case idx == removed:
				// dropped
			case idx > removed:
				shifted = append(shifted, idx-1)
			default:
				shifted = append(shifted, idx)
			}
		}
		out.Permissions = out.Permissions.withRoles(k, shifted)
	}
	return out
}
