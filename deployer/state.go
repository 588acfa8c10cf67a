package deployer

////////////////////////////////////////////////////////////////////////////////
// State construction and cloning
////////////////////////////////////////////////////////////////////////////////

// Wizard steps. The reducer clamps navigation into [StepWelcome, lastStep].
const (
	StepWelcome = iota
	StepTemplate
	StepJourney
	StepRoles
	StepPermissions
	StepVoting
	StepReview
	StepDeploy

	lastStep = StepDeploy
)

// MaxVotingClasses bounds the hybrid class list (wire format limit).
const MaxVotingClasses = 8

// NewState builds the empty pre-template state: one default root role, a
// pure-democracy voting config and no permissions granted.
func NewState() State {
	role := defaultRole("Member", true)
	return State{
		Step:  StepWelcome,
		Roles: []Role{role},
		Permissions: PermissionSets{
			QuickJoin:             []int{},
			TokenMember:           []int{},
			TokenApprover:         []int{},
			TaskCreator:           []int{},
			EducationCreator:      []int{},
			EducationMember:       []int{},
			HybridProposalCreator: []int{},
			DDVoting:              []int{},
			DDCreator:             []int{},
		},
		Voting:     SliderToVoting(100),
		Deployment: DeploymentState{Status: DeployIdle},
		Errors:     map[string]string{},
		Journey: Journey{
			DiscoveryAnswers:  map[string]string{},
			AssessmentAnswers: map[string]string{},
		},
	}
}

// defaultRole builds a fresh role with wizard defaults. The first role of an
// org mints to the deployer; later ones do not (reducer decides).
func defaultRole(name string, first bool) Role {
	maxSupply := uint64(5)
	if first {
		maxSupply = 1
	}
	return Role{
		ID:      newID(),
		Name:    name,
		CanVote: true,
		Vouching: VouchingPolicy{
			Quorum: 1,
		},
		Defaults: MemberDefaults{Eligible: true, InStanding: true},
		Distribution: Distribution{
			MintToDeployer:      first,
			AdditionalAddresses: []string{},
			AdditionalUsernames: []string{},
		},
		Hat: HatConfig{MaxSupply: maxSupply, Mutable: true},
	}
}

// SeedFromTemplate resets the configurable parts of the state from a
// template clone: roles, permissions, voting, features and the journey are
// template-driven; org metadata and step survive.
func SeedFromTemplate(s State, t *Template) State {
	out := cloneState(s)
	out.Org.TemplateID = t.ID

	out.Roles = make([]Role, len(t.Roles))
	for i, r := range t.Roles {
		out.Roles[i] = r.clone()
	}
	out.Permissions = t.Permissions.clone()
	out.Voting = t.Voting.clone()
	out.Features = t.Features
	out.Journey = Journey{
		DiscoveryAnswers:  map[string]string{},
		AssessmentAnswers: map[string]string{},
	}
	out.Errors = map[string]string{}
	return out
}

// cloneState deep-copies the whole tree. Reduce always works on a clone so
// previous states stay valid for the caller (undo stacks depend on it).
func cloneState(s State) State {
	out := s

	out.Org.Links = append([]OrgLink(nil), s.Org.Links...)

	out.Roles = make([]Role, len(s.Roles))
	for i, r := range s.Roles {
		out.Roles[i] = r.clone()
	}
	out.Permissions = s.Permissions.clone()
	out.Voting = s.Voting.clone()

	out.Errors = make(map[string]string, len(s.Errors))
	for k, v := range s.Errors {
		out.Errors[k] = v
	}
	out.Journey = s.Journey.clone()
	return out
}
