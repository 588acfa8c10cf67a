////////////////////////////////////////////////////////////////////////////////
// Orgforge: organization configuration core for the deployment wizard
////////////////////////////////////////////////////////////////////////////////

package deployer

import "math/big"

// PermissionKey enumerates the nine independent permission sets. The sets are
// the single source of truth; power bundles (powers.go) are a view over them.
type PermissionKey uint8

const (
	PermQuickJoin PermissionKey = iota
	PermTokenMember
	PermTokenApprover
	PermTaskCreator
	PermEducationCreator
	PermEducationMember
	PermHybridProposalCreator
	PermDDVoting
	PermDDCreator
)

// AllPermissionKeys is the canonical iteration order for anything that walks
// the nine sets. Output determinism depends on it, do not reorder.
var AllPermissionKeys = []PermissionKey{
	PermQuickJoin,
	PermTokenMember,
	PermTokenApprover,
	PermTaskCreator,
	PermEducationCreator,
	PermEducationMember,
	PermHybridProposalCreator,
	PermDDVoting,
	PermDDCreator,
}

// String prints the wire name of a permission set for messages and JSON keys.
func (k PermissionKey) String() string {
	switch k {
	case PermQuickJoin:
		return "quickJoin"
	case PermTokenMember:
		return "tokenMember"
	case PermTokenApprover:
		return "tokenApprover"
	case PermTaskCreator:
		return "taskCreator"
	case PermEducationCreator:
		return "educationCreator"
	case PermEducationMember:
		return "educationMember"
	case PermHybridProposalCreator:
		return "hybridProposalCreator"
	case PermDDVoting:
		return "ddVoting"
	case PermDDCreator:
		return "ddCreator"
	default:
		return "unknown"
	}
}

// ParsePermissionKey resolves a wire name back to its enum value.
func ParsePermissionKey(s string) (PermissionKey, bool) {
	for _, k := range AllPermissionKeys {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// PermissionSets holds the nine role-index sets. Every slice is kept sorted
// ascending and free of duplicates; writers go through Roles/withRoles so the
// invariant holds everywhere.
type PermissionSets struct {
	QuickJoin             []int `json:"quickJoin" yaml:"quickJoin"`
	TokenMember           []int `json:"tokenMember" yaml:"tokenMember"`
	TokenApprover         []int `json:"tokenApprover" yaml:"tokenApprover"`
	TaskCreator           []int `json:"taskCreator" yaml:"taskCreator"`
	EducationCreator      []int `json:"educationCreator" yaml:"educationCreator"`
	EducationMember       []int `json:"educationMember" yaml:"educationMember"`
	HybridProposalCreator []int `json:"hybridProposalCreator" yaml:"hybridProposalCreator"`
	DDVoting              []int `json:"ddVoting" yaml:"ddVoting"`
	DDCreator             []int `json:"ddCreator" yaml:"ddCreator"`
}

// Roles returns the index list behind a permission key.
func (p PermissionSets) Roles(key PermissionKey) []int {
	switch key {
	case PermQuickJoin:
		return p.QuickJoin
	case PermTokenMember:
		return p.TokenMember
	case PermTokenApprover:
		return p.TokenApprover
	case PermTaskCreator:
		return p.TaskCreator
	case PermEducationCreator:
		return p.EducationCreator
	case PermEducationMember:
		return p.EducationMember
	case PermHybridProposalCreator:
		return p.HybridProposalCreator
	case PermDDVoting:
		return p.DDVoting
	case PermDDCreator:
		return p.DDCreator
	default:
		return nil
	}
}

// withRoles returns a copy with one set replaced by a sorted, deduplicated list.
func (p PermissionSets) withRoles(key PermissionKey, list []int) PermissionSets {
	clean := dedupSortInts(list)
	switch key {
	case PermQuickJoin:
		p.QuickJoin = clean
	case PermTokenMember:
		p.TokenMember = clean
	case PermTokenApprover:
		p.TokenApprover = clean
	case PermTaskCreator:
		p.TaskCreator = clean
	case PermEducationCreator:
		p.EducationCreator = clean
	case PermEducationMember:
		p.EducationMember = clean
	case PermHybridProposalCreator:
		p.HybridProposalCreator = clean
	case PermDDVoting:
		p.DDVoting = clean
	case PermDDCreator:
		p.DDCreator = clean
	}
	return p
}

// clone deep-copies all nine slices so reducer writes never alias old states.
func (p PermissionSets) clone() PermissionSets {
	out := p
	for _, k := range AllPermissionKeys {
		out = out.withRoles(k, p.Roles(k))
	}
	return out
}

// VouchingPolicy is a role's join-by-endorsement rule. VoucherRole is an index
// into the role list and only meaningful while Enabled is set.
type VouchingPolicy struct {
	Enabled              bool `json:"enabled" yaml:"enabled"`
	Quorum               int  `json:"quorum" yaml:"quorum"`
	VoucherRole          int  `json:"voucherRole" yaml:"voucherRole"`
	CombineWithHierarchy bool `json:"combineWithHierarchy" yaml:"combineWithHierarchy"`
}

// MemberDefaults is the standing a freshly minted member starts with.
type MemberDefaults struct {
	Eligible   bool `json:"eligible" yaml:"eligible"`
	InStanding bool `json:"inStanding" yaml:"inStanding"`
}

// Distribution says who receives the role's hat at deployment time.
type Distribution struct {
	MintToDeployer      bool     `json:"mintToDeployer" yaml:"mintToDeployer"`
	MintToExecutor      bool     `json:"mintToExecutor" yaml:"mintToExecutor"`
	AdditionalAddresses []string `json:"additionalAddresses" yaml:"additionalAddresses"`
	AdditionalUsernames []string `json:"additionalUsernames" yaml:"additionalUsernames"`
}

// HatConfig carries the on-chain hat parameters for a role.
type HatConfig struct {
	MaxSupply uint64 `json:"maxSupply" yaml:"maxSupply"`
	Mutable   bool   `json:"mutable" yaml:"mutable"`
}

// Role is one node of the organization forest. AdminRole is the parent index;
// nil marks a root. ID is opaque and never carries ordering semantics.
type Role struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Image        string         `json:"image" yaml:"image"`
	CanVote      bool           `json:"canVote" yaml:"canVote"`
	Vouching     VouchingPolicy `json:"vouching" yaml:"vouching"`
	Defaults     MemberDefaults `json:"defaults" yaml:"defaults"`
	AdminRole    *int           `json:"adminRole" yaml:"adminRole"`
	Distribution Distribution   `json:"distribution" yaml:"distribution"`
	Hat          HatConfig      `json:"hatConfig" yaml:"hatConfig"`
}

// clone deep-copies the pointer and slice fields.
func (r Role) clone() Role {
	out := r
	if r.AdminRole != nil {
		v := *r.AdminRole
		out.AdminRole = &v
	}
	out.Distribution.AdditionalAddresses = append([]string(nil), r.Distribution.AdditionalAddresses...)
	out.Distribution.AdditionalUsernames = append([]string(nil), r.Distribution.AdditionalUsernames...)
	return out
}

// VotingStrategy defines how one voting class weighs its participants.
type VotingStrategy uint8

const (
	StrategyDirect     VotingStrategy = 0 // one person one vote, gated by hats
	StrategyErcBalance VotingStrategy = 1 // token balance weighted
)

// String prints the strategy as lower-case text for events and logs.
func (vs VotingStrategy) String() string {
	switch vs {
	case StrategyDirect:
		return "direct"
	case StrategyErcBalance:
		return "erc-balance"
	default:
		return "direct"
	}
}

// VotingMode tags the overall shape of the voting configuration.
type VotingMode uint8

const (
	ModeDirect VotingMode = 0
	ModeHybrid VotingMode = 1
)

// String prints the mode as lower-case text.
func (vm VotingMode) String() string {
	switch vm {
	case ModeHybrid:
		return "hybrid"
	default:
		return "direct"
	}
}

// VotingClass is one weighted participation rule. Slices over all classes must
// sum to exactly 100 (validator enforced). Asset is a hex address or empty
// for the zero address; MinBalance nil means zero.
type VotingClass struct {
	ID         string         `json:"id" yaml:"id"`
	Strategy   VotingStrategy `json:"strategy" yaml:"strategy"`
	SlicePct   int            `json:"slicePct" yaml:"slicePct"`
	Quadratic  bool           `json:"quadratic" yaml:"quadratic"`
	MinBalance *big.Int       `json:"minBalance" yaml:"minBalance"`
	Asset      string         `json:"asset" yaml:"asset"`
	Hats       []string       `json:"hats" yaml:"hats"`
}

// clone deep-copies the big number and hat list.
func (vc VotingClass) clone() VotingClass {
	out := vc
	if vc.MinBalance != nil {
		out.MinBalance = new(big.Int).Set(vc.MinBalance)
	}
	out.Hats = append([]string(nil), vc.Hats...)
	return out
}

// VotingConfig is the complete voting setup. DemocracyWeight and
// ParticipationWeight always sum to 100; the philosophy mapper keeps them and
// the class list consistent.
type VotingConfig struct {
	Mode                VotingMode    `json:"mode" yaml:"mode"`
	HybridQuorum        int           `json:"hybridQuorum" yaml:"hybridQuorum"`
	DDQuorum            int           `json:"ddQuorum" yaml:"ddQuorum"`
	Quadratic           bool          `json:"quadratic" yaml:"quadratic"`
	DemocracyWeight     int           `json:"democracyWeight" yaml:"democracyWeight"`
	ParticipationWeight int           `json:"participationWeight" yaml:"participationWeight"`
	Classes             []VotingClass `json:"classes" yaml:"classes"`
}

// clone deep-copies the class list.
func (v VotingConfig) clone() VotingConfig {
	out := v
	out.Classes = make([]VotingClass, len(v.Classes))
	for i, c := range v.Classes {
		out.Classes[i] = c.clone()
	}
	return out
}

// OrgLink is one external link shown on the organization profile.
type OrgLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// OrgMeta is the organization-level metadata block of the wizard state.
type OrgMeta struct {
	Name             string    `json:"name" yaml:"name"`
	Description      string    `json:"description" yaml:"description"`
	LogoCID          string    `json:"logoCID" yaml:"logoCID"`
	Links            []OrgLink `json:"links" yaml:"links"`
	InfoCID          string    `json:"infoCID" yaml:"infoCID"`
	AutoUpgrade      bool      `json:"autoUpgrade" yaml:"autoUpgrade"`
	DeployerUsername string    `json:"deployerUsername" yaml:"deployerUsername"`
	TemplateID       string    `json:"templateId" yaml:"templateId"`
}

// Features holds the optional hub toggles.
type Features struct {
	EducationHub bool `json:"educationHub" yaml:"educationHub"`
	ElectionHub  bool `json:"electionHub" yaml:"electionHub"`
}

// DeploymentStatus is the coarse lifecycle of the external deployment call.
type DeploymentStatus string

const (
	DeployIdle      DeploymentStatus = "idle"
	DeployPreparing DeploymentStatus = "preparing"
	DeployRunning   DeploymentStatus = "deploying"
	DeploySuccess   DeploymentStatus = "success"
	DeployError     DeploymentStatus = "error"
)

// DeploymentState mirrors whatever the external submitter reports back.
type DeploymentState struct {
	Status DeploymentStatus `json:"status" yaml:"status"`
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`
	Result string           `json:"result,omitempty" yaml:"result,omitempty"`
}

// Journey is the template-discovery sub-state.
type Journey struct {
	DiscoveryAnswers  map[string]string `json:"discoveryAnswers" yaml:"discoveryAnswers"`
	AssessmentAnswers map[string]string `json:"assessmentAnswers" yaml:"assessmentAnswers"`
	QuestionIndex     int               `json:"questionIndex" yaml:"questionIndex"`
	MatchedVariation  string            `json:"matchedVariation" yaml:"matchedVariation"`
}

// clone deep-copies both answer maps.
func (j Journey) clone() Journey {
	out := j
	out.DiscoveryAnswers = make(map[string]string, len(j.DiscoveryAnswers))
	for k, v := range j.DiscoveryAnswers {
		out.DiscoveryAnswers[k] = v
	}
	out.AssessmentAnswers = make(map[string]string, len(j.AssessmentAnswers))
	for k, v := range j.AssessmentAnswers {
		out.AssessmentAnswers[k] = v
	}
	return out
}

// State is the canonical wizard state tree. The reducer is the only writer;
// everything else reads. Values are treated as immutable: Reduce returns a
// fresh copy and never touches its input.
type State struct {
	Step        int               `json:"step" yaml:"step"`
	Org         OrgMeta           `json:"org" yaml:"org"`
	Roles       []Role            `json:"roles" yaml:"roles"`
	Permissions PermissionSets    `json:"permissions" yaml:"permissions"`
	Voting      VotingConfig      `json:"voting" yaml:"voting"`
	Features    Features          `json:"features" yaml:"features"`
	Deployment  DeploymentState   `json:"deployment" yaml:"deployment"`
	Errors      map[string]string `json:"errors" yaml:"errors"`
	Journey     Journey           `json:"journey" yaml:"journey"`
}
