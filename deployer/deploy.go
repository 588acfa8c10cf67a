package deployer

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/mr-tron/base58"
)

////////////////////////////////////////////////////////////////////////////////
// Deployment mapper: validated state -> bit-exact blueprint
////////////////////////////////////////////////////////////////////////////////

// ParticipationTokenDecimals is fixed for the org's own token; bounty tokens
// carry their own decimals.
const ParticipationTokenDecimals = 18

// HybridClassParams is the wire form of one voting class.
type HybridClassParams struct {
	Strategy   uint8
	SlicePct   uint8
	Quadratic  bool
	MinBalance *uint256.Int
	Asset      common.Address
	HatIDs     []*uint256.Int
}

// VouchingParams mirrors the role's vouching policy on the wire.
type VouchingParams struct {
	Enabled              bool
	Quorum               uint64
	VoucherRoleIndex     uint64
	CombineWithHierarchy bool
}

// MemberDefaultParams mirrors the default member standing.
type MemberDefaultParams struct {
	Eligible   bool
	InStanding bool
}

// DistributionParams mirrors the hat distribution policy.
type DistributionParams struct {
	MintToDeployer      bool
	MintToExecutor      bool
	AdditionalAddresses []common.Address
	AdditionalUsernames []string
}

// HatParams is the on-chain hat config.
type HatParams struct {
	MaxSupply  uint64
	MutableHat bool
}

// RoleParams is the wire form of one role. Name is raw UTF-8 bytes, never a
// hash. AdminRoleIndex is 2^256-1 for roots, the numeric index otherwise.
type RoleParams struct {
	Name           []byte
	Image          string
	CanVote        bool
	Vouching       VouchingParams
	Defaults       MemberDefaultParams
	AdminRoleIndex *uint256.Int
	Distribution   DistributionParams
	HatConfig      HatParams
}

// RoleAssignments carries the nine permission bitmaps over the role list.
type RoleAssignments struct {
	QuickJoinBitmap             uint32
	TokenMemberBitmap           uint32
	TokenApproverBitmap         uint32
	TaskCreatorBitmap           uint32
	EducationCreatorBitmap      uint32
	EducationMemberBitmap       uint32
	HybridProposalCreatorBitmap uint32
	DDVotingBitmap              uint32
	DDCreatorBitmap             uint32
}

// Blueprint is the record handed to the external ABI encoder.
type Blueprint struct {
	OrgID            [32]byte
	OrgName          string
	RegistryAddr     common.Address
	DeployerAddress  common.Address
	DeployerUsername string
	AutoUpgrade      bool
	HybridQuorumPct  uint8
	DDQuorumPct      uint8
	HybridClasses    []HybridClassParams
	DDInitialTargets []common.Address
	Roles            []RoleParams
	RoleAssignments  RoleAssignments
}

// MetadataBundle is the companion content-addressed metadata record.
type MetadataBundle struct {
	Description  string    `json:"description"`
	Links        []OrgLink `json:"links"`
	LogoURL      string    `json:"logoURL"`
	InfoIPFSHash string    `json:"infoIPFSHash"`
}

// FeatureFlags is the companion features record.
type FeatureFlags struct {
	EducationHubEnabled bool `json:"educationHubEnabled"`
	ElectionHubEnabled  bool `json:"electionHubEnabled"`
}

// DeploymentPlan bundles everything the submitter needs for one call.
type DeploymentPlan struct {
	Blueprint Blueprint
	Metadata  MetadataBundle
	Features  FeatureFlags
}

// RootSentinel is the adminRoleIndex marking a root role: 2^256 - 1.
func RootSentinel() *uint256.Int {
	return new(uint256.Int).SetAllOne()
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// OrgIDFor derives the 32-byte org id: Keccak-256 of the lowercased name
// with every whitespace run replaced by a single dash.
func OrgIDFor(orgName string) [32]byte {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(orgName), "-")
	var out [32]byte
	copy(out[:], crypto.Keccak256([]byte(slug)))
	return out
}

// CIDDigest extracts the 32-byte sha256 digest from a CIDv0 string by
// stripping the 0x1220 multihash prefix. An empty cid yields the all-zero
// digest (no metadata attached).
func CIDDigest(cid string) ([32]byte, *Error) {
	var out [32]byte
	if cid == "" {
		return out, nil
	}
	if err := ValidateCID(cid); err != nil {
		return out, err
	}
	raw, err := base58.Decode(cid)
	if err != nil {
		return out, errf(KindBadCID, "malformed CIDv0 %q: %v", cid, err)
	}
	copy(out[:], raw[2:])
	return out, nil
}

// WeiFromDecimal converts a human decimal amount ("1.5") into the wei domain
// for a token with the given decimals.
func WeiFromDecimal(amount string, decimals uint8) (*big.Int, *Error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return new(big.Int), nil
	}
	whole := amount
	frac := ""
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		whole, frac = amount[:i], amount[i+1:]
	}
	if len(frac) > int(decimals) {
		return nil, errf(KindOutOfRange, "amount %q has more than %d decimal places", amount, decimals)
	}
	digits := whole + frac + strings.Repeat("0", int(decimals)-len(frac))
	wei, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errf(KindOutOfRange, "amount %q is not a decimal number", amount)
	}
	if wei.Sign() < 0 {
		return nil, errf(KindOutOfRange, "amount %q must not be negative", amount)
	}
	return wei, nil
}

// maxUint96 = 2^96 - 1, the cap for 96-bit wire fields.
var maxUint96 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))

// EnsureUint96 rejects wei values that overflow a 96-bit field.
func EnsureUint96(wei *big.Int) *Error {
	if wei == nil {
		return nil
	}
	if wei.Cmp(maxUint96) > 0 {
		return errf(KindAmountOverflow, "amount %s exceeds the 96-bit field cap", wei.String())
	}
	return nil
}

// BuildPlan validates the state and projects it into the deployment plan.
// registryAddr must be supplied by the caller; there is no default. The role
// list is reordered so parents precede children, with every index-bearing
// structure rewritten to match.
func BuildPlan(s State, deployerAddr, registryAddr string) (*DeploymentPlan, []*Error) {
	errs := []*Error{}

	report := Validate(s)
	if !report.OK {
		return nil, report.Errors
	}

	if registryAddr == "" {
		return nil, []*Error{errf(KindRegistryMissing, "no registry address supplied")}
	}
	if err := ValidateAddress(registryAddr); err != nil {
		return nil, []*Error{err}
	}
	if err := ValidateAddress(deployerAddr); err != nil {
		return nil, []*Error{err}
	}

	roles, perms := ReorderByDependency(s.Roles, s.Permissions)

	bp := Blueprint{
		OrgID:            OrgIDFor(s.Org.Name),
		OrgName:          s.Org.Name,
		RegistryAddr:     common.HexToAddress(registryAddr),
		DeployerAddress:  common.HexToAddress(deployerAddr),
		DeployerUsername: s.Org.DeployerUsername,
		AutoUpgrade:      s.Org.AutoUpgrade,
		HybridQuorumPct:  uint8(clampInt(s.Voting.HybridQuorum, 1, 100)),
		DDQuorumPct:      uint8(clampInt(s.Voting.DDQuorum, 1, 100)),
		DDInitialTargets: []common.Address{},
	}

	for _, c := range s.Voting.Classes {
		wire := HybridClassParams{
			Strategy:   uint8(c.Strategy),
			SlicePct:   uint8(clampInt(c.SlicePct, 0, 100)),
			Quadratic:  c.Quadratic,
			MinBalance: uint256.NewInt(0),
			HatIDs:     []*uint256.Int{},
		}
		if c.MinBalance != nil {
			mb, overflow := uint256.FromBig(c.MinBalance)
			if overflow {
				errs = append(errs, errf(KindOutOfRange, "class min balance %s does not fit 256 bits", c.MinBalance.String()))
				continue
			}
			wire.MinBalance = mb
		}
		if c.Asset != "" {
			if err := ValidateAddress(c.Asset); err != nil {
				errs = append(errs, err)
				continue
			}
			wire.Asset = common.HexToAddress(c.Asset)
		}
		for _, hat := range c.Hats {
			id, err := uint256.FromDecimal(hat)
			if err != nil {
				errs = append(errs, errf(KindOutOfRange, "hat id %q is not a valid 256-bit number", hat))
				continue
			}
			wire.HatIDs = append(wire.HatIDs, id)
		}
		bp.HybridClasses = append(bp.HybridClasses, wire)
	}

	for i, r := range roles {
		wire := RoleParams{
			Name:    []byte(r.Name),
			Image:   r.Image,
			CanVote: r.CanVote,
			Vouching: VouchingParams{
				Enabled:              r.Vouching.Enabled,
				Quorum:               uint64(max(r.Vouching.Quorum, 0)),
				VoucherRoleIndex:     uint64(r.Vouching.VoucherRole),
				CombineWithHierarchy: r.Vouching.CombineWithHierarchy,
			},
			Defaults:       MemberDefaultParams{Eligible: r.Defaults.Eligible, InStanding: r.Defaults.InStanding},
			AdminRoleIndex: RootSentinel(),
			Distribution: DistributionParams{
				MintToDeployer:      r.Distribution.MintToDeployer,
				MintToExecutor:      r.Distribution.MintToExecutor,
				AdditionalAddresses: []common.Address{},
				AdditionalUsernames: append([]string{}, r.Distribution.AdditionalUsernames...),
			},
			HatConfig: HatParams{MaxSupply: r.Hat.MaxSupply, MutableHat: r.Hat.Mutable},
		}
		if r.AdminRole != nil {
			wire.AdminRoleIndex = uint256.NewInt(uint64(*r.AdminRole))
		}
		for _, addr := range r.Distribution.AdditionalAddresses {
			if err := ValidateAddress(addr); err != nil {
				errs = append(errs, roleErrf(KindBadAddress, i, "role %q wearer address %q is malformed", r.Name, addr))
				continue
			}
			wire.Distribution.AdditionalAddresses = append(wire.Distribution.AdditionalAddresses, common.HexToAddress(addr))
		}
		bp.Roles = append(bp.Roles, wire)
	}

	bp.RoleAssignments = RoleAssignments{
		QuickJoinBitmap:             uint32(ToBitmap(perms.QuickJoin)),
		TokenMemberBitmap:           uint32(ToBitmap(perms.TokenMember)),
		TokenApproverBitmap:         uint32(ToBitmap(perms.TokenApprover)),
		TaskCreatorBitmap:           uint32(ToBitmap(perms.TaskCreator)),
		EducationCreatorBitmap:      uint32(ToBitmap(perms.EducationCreator)),
		EducationMemberBitmap:       uint32(ToBitmap(perms.EducationMember)),
		HybridProposalCreatorBitmap: uint32(ToBitmap(perms.HybridProposalCreator)),
		DDVotingBitmap:              uint32(ToBitmap(perms.DDVoting)),
		DDCreatorBitmap:             uint32(ToBitmap(perms.DDCreator)),
	}

	if len(errs) > 0 {
		return nil, errs
	}

	plan := &DeploymentPlan{
		Blueprint: bp,
		Metadata: MetadataBundle{
			Description:  s.Org.Description,
			Links:        append([]OrgLink{}, s.Org.Links...),
			LogoURL:      s.Org.LogoCID,
			InfoIPFSHash: s.Org.InfoCID,
		},
		Features: FeatureFlags{
			EducationHubEnabled: s.Features.EducationHub,
			ElectionHubEnabled:  s.Features.ElectionHub,
		},
	}
	return plan, nil
}

// ContentStore is the injected content-addressed store. Put returns a CIDv0
// string. The store is optional: a nil store means metadata digests stay
// all-zero.
type ContentStore interface {
	Put(data []byte) (string, error)
}

// MetadataDigest uploads the metadata bundle through the store (when present)
// and returns the 32-byte digest of the resulting CID. Without a store the
// digest is all zeroes, which the deployment call accepts as "no metadata".
func MetadataDigest(meta MetadataBundle, store ContentStore) ([32]byte, error) {
	var zero [32]byte
	if store == nil {
		return zero, nil
	}
	payload, err := ToJSON(meta, "metadata bundle")
	if err != nil {
		return zero, err
	}
	cid, err := store.Put([]byte(payload))
	if err != nil {
		return zero, err
	}
	digest, derr := CIDDigest(cid)
	if derr != nil {
		return zero, derr
	}
	return digest, nil
}
