package deployer

import "math/big"

////////////////////////////////////////////////////////////////////////////////
// Actions: tagged variants consumed by Reduce
////////////////////////////////////////////////////////////////////////////////

// Action is the closed set of state mutations. Every variant is a plain
// record; Reduce dispatches on the concrete type.
type Action interface{ isAction() }

// --- navigation ---

type SetStep struct{ Step int }
type NextStep struct{}
type PrevStep struct{}

// --- organization metadata ---

type SetOrgName struct{ Name string }
type SetOrgDescription struct{ Description string }
type SetLogo struct{ CID string }
type SetInfoHash struct{ CID string }
type SetDeployerUsername struct{ Username string }
type SetAutoUpgrade struct{ Enabled bool }
type AddLink struct{ Label, URL string }
type RemoveLink struct{ Index int }
type UpdateLink struct {
	Index      int
	Label, URL string
}

// --- template selection ---

type SelectTemplate struct{ ID string }

// --- roles ---

// RolePatch is a shallow merge for UpdateRole; nil fields keep prior values.
type RolePatch struct {
	Name    *string
	Image   *string
	CanVote *bool
}

type AddRole struct{ Name string }
type UpdateRole struct {
	Index int
	Patch RolePatch
}
type RemoveRole struct{ Index int }
type ReorderRoles struct{ Roles []Role }
type UpdateRoleHierarchy struct {
	Index      int
	AdminIndex *int
}

// VouchingPatch is a partial update of a role's vouching policy.
type VouchingPatch struct {
	Enabled              *bool
	Quorum               *int
	VoucherRole          *int
	CombineWithHierarchy *bool
}
type UpdateRoleVouching struct {
	Index int
	Patch VouchingPatch
}

// DistributionPatch is a partial update of a role's distribution policy.
type DistributionPatch struct {
	MintToDeployer      *bool
	MintToExecutor      *bool
	AdditionalAddresses *[]string
	AdditionalUsernames *[]string
}
type UpdateRoleDistribution struct {
	Index int
	Patch DistributionPatch
}

// HatPatch is a partial update of a role's hat config.
type HatPatch struct {
	MaxSupply *uint64
	Mutable   *bool
}
type UpdateRoleHatConfig struct {
	Index int
	Patch HatPatch
}

// --- permissions ---

type TogglePermission struct {
	Key   PermissionKey
	Index int
}
type SetPermission struct {
	Key     PermissionKey
	Index   int
	Enabled bool
}
type SetPermissionRoles struct {
	Key   PermissionKey
	Roles []int
}
type GrantAllForRole struct{ Index int }
type RevokeAllForRole struct{ Index int }
type ToggleBundle struct {
	Bundle Bundle
	Index  int
}

// --- voting ---

type SetVotingMode struct{ Mode VotingMode }
type SetVotingQuorum struct {
	HybridQuorum *int
	DDQuorum     *int
}

// VotingPatch merges top-level voting fields; the class list is only replaced
// wholesale (advanced mode).
type VotingPatch struct {
	Mode                *VotingMode
	HybridQuorum        *int
	DDQuorum            *int
	Quadratic           *bool
	DemocracyWeight     *int
	ParticipationWeight *int
	Classes             *[]VotingClass
}
type UpdateVoting struct{ Patch VotingPatch }

type AddVotingClass struct{ Class *VotingClass }

// ClassPatch is a partial update of one voting class.
type ClassPatch struct {
	Strategy   *VotingStrategy
	SlicePct   *int
	Quadratic  *bool
	MinBalance *big.Int
	Asset      *string
	Hats       *[]string
}
type UpdateVotingClass struct {
	Index int
	Patch ClassPatch
}
type RemoveVotingClass struct{ Index int }

// --- template journey ---

type SetDiscoveryAnswer struct{ QuestionID, Value string }
type SetSelfAssessmentAnswer struct{ QuestionID, Value string }
type NextDiscoveryQuestion struct{}
type PrevDiscoveryQuestion struct{}
type SetCurrentQuestionIndex struct{ Index int }
type SetMatchedVariation struct{ ID string }
type RematchVariation struct{}

// --- features ---

type ToggleFeature struct {
	Name  string
	Value *bool
}

// --- philosophy ---

type ApplyPhilosophy struct {
	Slider        int
	OverrideHints bool
}

// --- validation / deployment / reset ---

type SetErrors struct{ Errors map[string]string }
type ClearErrors struct{}

// DeploymentPatch merges status fields; nil keeps prior values.
type DeploymentPatch struct {
	Status *DeploymentStatus
	Error  *string
	Result *string
}
type SetDeploymentStatus struct{ Patch DeploymentPatch }
type ResetState struct{}

func (SetStep) isAction()                 {}
func (NextStep) isAction()                {}
func (PrevStep) isAction()                {}
func (SetOrgName) isAction()              {}
func (SetOrgDescription) isAction()       {}
func (SetLogo) isAction()                 {}
func (SetInfoHash) isAction()             {}
func (SetDeployerUsername) isAction()     {}
func (SetAutoUpgrade) isAction()          {}
func (AddLink) isAction()                 {}
func (RemoveLink) isAction()              {}
func (UpdateLink) isAction()              {}
func (SelectTemplate) isAction()          {}
func (AddRole) isAction()                 {}
func (UpdateRole) isAction()              {}
func (RemoveRole) isAction()              {}
func (ReorderRoles) isAction()            {}
func (UpdateRoleHierarchy) isAction()     {}
func (UpdateRoleVouching) isAction()      {}
func (UpdateRoleDistribution) isAction()  {}
func (UpdateRoleHatConfig) isAction()     {}
func (TogglePermission) isAction()        {}
func (SetPermission) isAction()           {}
func (SetPermissionRoles) isAction()      {}
func (GrantAllForRole) isAction()         {}
func (RevokeAllForRole) isAction()        {}
func (ToggleBundle) isAction()            {}
func (SetVotingMode) isAction()           {}
func (SetVotingQuorum) isAction()         {}
func (UpdateVoting) isAction()            {}
func (AddVotingClass) isAction()          {}
func (UpdateVotingClass) isAction()       {}
func (RemoveVotingClass) isAction()       {}
func (SetDiscoveryAnswer) isAction()      {}
func (SetSelfAssessmentAnswer) isAction() {}
func (NextDiscoveryQuestion) isAction()   {}
func (PrevDiscoveryQuestion) isAction()   {}
func (SetCurrentQuestionIndex) isAction() {}
func (SetMatchedVariation) isAction()     {}
func (RematchVariation) isAction()        {}
func (ToggleFeature) isAction()           {}
func (ApplyPhilosophy) isAction()         {}
func (SetErrors) isAction()               {}
func (ClearErrors) isAction()             {}
func (SetDeploymentStatus) isAction()     {}
func (ResetState) isAction()              {}
