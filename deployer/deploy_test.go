package deployer_test

import (
	"crypto/sha256"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgforge/deployer"
)

// =============================================================================
// Deployment Mapper Tests
// =============================================================================

const (
	testRegistry = "0x00000000000000000000000000000000000000A1"
	testDeployer = "0x00000000000000000000000000000000000000B2"
)

// TestOrgIDSlug reproduces the naming scenario: lowercase, collapse every
// whitespace run to a single dash, then keccak.
func TestOrgIDSlug(t *testing.T) {
	var want [32]byte
	copy(want[:], crypto.Keccak256([]byte("my-dao-name")))
	assert.Equal(t, want, deployer.OrgIDFor("My Dao  Name"))
	assert.Equal(t, want, deployer.OrgIDFor("my dao\tname"))
	assert.NotEqual(t, want, deployer.OrgIDFor("my dao name!"))
}

// TestCIDDigestRoundTrip checks the digest survives encode/extract and that
// the empty cid maps to all zeroes.
func TestCIDDigestRoundTrip(t *testing.T) {
	digest := sha256.Sum256([]byte("blueprint metadata"))
	cid := base58.Encode(append([]byte{0x12, 0x20}, digest[:]...))

	got, err := deployer.CIDDigest(cid)
	require.Nil(t, err)
	assert.Equal(t, digest, got)

	var zero [32]byte
	got, err = deployer.CIDDigest("")
	require.Nil(t, err)
	assert.Equal(t, zero, got)

	_, err = deployer.CIDDigest("QmNotACid")
	require.NotNil(t, err)
	assert.Equal(t, deployer.KindBadCID, err.Kind)
}

// TestWeiFromDecimal covers whole, fractional and rejected amounts.
func TestWeiFromDecimal(t *testing.T) {
	wei, err := deployer.WeiFromDecimal("1.5", 18)
	require.Nil(t, err)
	assert.Equal(t, "1500000000000000000", wei.String())

	wei, err = deployer.WeiFromDecimal("42", 6)
	require.Nil(t, err)
	assert.Equal(t, "42000000", wei.String())

	wei, err = deployer.WeiFromDecimal("0.000001", 6)
	require.Nil(t, err)
	assert.Equal(t, "1", wei.String())

	wei, err = deployer.WeiFromDecimal("", 18)
	require.Nil(t, err)
	assert.Equal(t, int64(0), wei.Int64())

	_, err = deployer.WeiFromDecimal("1.1234567", 6)
	require.NotNil(t, err)
	assert.Equal(t, deployer.KindOutOfRange, err.Kind)

	_, err = deployer.WeiFromDecimal("abc", 18)
	require.NotNil(t, err)

	_, err = deployer.WeiFromDecimal("-3", 18)
	require.NotNil(t, err)
}

// TestEnsureUint96 checks the 96-bit wire cap at its exact edge.
func TestEnsureUint96(t *testing.T) {
	cap96 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))
	assert.Nil(t, deployer.EnsureUint96(cap96))
	assert.Nil(t, deployer.EnsureUint96(big.NewInt(0)))
	assert.Nil(t, deployer.EnsureUint96(nil))

	over := new(big.Int).Add(cap96, big.NewInt(1))
	err := deployer.EnsureUint96(over)
	require.NotNil(t, err)
	assert.Equal(t, deployer.KindAmountOverflow, err.Kind)
}

// TestBuildPlanHappyPath projects a seeded worker-coop into the wire shape.
func TestBuildPlanHappyPath(t *testing.T) {
	s := readyState()
	s = deployer.Reduce(s, deployer.SelectTemplate{ID: "worker-coop"})
	s = deployer.Reduce(s, deployer.SetDeployerUsername{Username: "alice"})
	s = deployer.Reduce(s, deployer.SetAutoUpgrade{Enabled: true})

	plan, errs := deployer.BuildPlan(s, testDeployer, testRegistry)
	require.Empty(t, errs)
	require.NotNil(t, plan)
	bp := plan.Blueprint

	assert.Equal(t, deployer.OrgIDFor("Test Org"), bp.OrgID)
	assert.Equal(t, "Test Org", bp.OrgName)
	assert.Equal(t, "alice", bp.DeployerUsername)
	assert.True(t, bp.AutoUpgrade)
	assert.Equal(t, uint8(50), bp.HybridQuorumPct)

	// worker-coop: Coordinator(0) <- Worker-Member(1) <- Candidate(2), already
	// dependency ordered, so indices survive untouched
	require.Len(t, bp.Roles, 3)
	assert.Equal(t, []byte("Coordinator"), bp.Roles[0].Name)
	assert.True(t, bp.Roles[0].AdminRoleIndex.Eq(deployer.RootSentinel()))
	assert.Equal(t, uint64(0), bp.Roles[1].AdminRoleIndex.Uint64())
	assert.Equal(t, uint64(1), bp.Roles[2].AdminRoleIndex.Uint64())
	assert.Equal(t, uint64(2), bp.Roles[1].Vouching.Quorum)
	assert.Equal(t, uint64(200), bp.Roles[1].HatConfig.MaxSupply)

	// quickJoin={2}, tokenMember={0,1}, ddVoting={0,1}
	assert.Equal(t, uint32(0b100), bp.RoleAssignments.QuickJoinBitmap)
	assert.Equal(t, uint32(0b011), bp.RoleAssignments.TokenMemberBitmap)
	assert.Equal(t, uint32(0b011), bp.RoleAssignments.DDVotingBitmap)
	assert.Equal(t, uint32(0b111), bp.RoleAssignments.EducationMemberBitmap)

	require.Len(t, bp.HybridClasses, 2)
	assert.Equal(t, uint8(85), bp.HybridClasses[0].SlicePct)
	assert.Equal(t, uint8(1), bp.HybridClasses[1].Strategy)
	assert.True(t, bp.HybridClasses[0].MinBalance.IsZero())

	assert.Equal(t, "A test organization.", plan.Metadata.Description)
	assert.True(t, plan.Features.EducationHubEnabled)
}

// TestBuildPlanReorders checks a child-before-parent state comes out
// dependency ordered with rewritten bitmaps.
func TestBuildPlanReorders(t *testing.T) {
	s := readyState()
	s = deployer.Reduce(s, deployer.AddRole{Name: "Boss"})
	// Member(0) reports to Boss(1): the wire order must flip them
	s = deployer.Reduce(s, deployer.UpdateRoleHierarchy{Index: 0, AdminIndex: ip(1)})
	s = deployer.Reduce(s, deployer.SetPermissionRoles{Key: deployer.PermTaskCreator, Roles: []int{0}})

	plan, errs := deployer.BuildPlan(s, testDeployer, testRegistry)
	require.Empty(t, errs)
	bp := plan.Blueprint

	require.Len(t, bp.Roles, 2)
	assert.Equal(t, []byte("Boss"), bp.Roles[0].Name)
	assert.Equal(t, []byte("Member"), bp.Roles[1].Name)
	assert.Equal(t, uint64(0), bp.Roles[1].AdminRoleIndex.Uint64())
	// taskCreator followed Member from index 0 to index 1
	assert.Equal(t, uint32(0b10), bp.RoleAssignments.TaskCreatorBitmap)
}

// TestBuildPlanRefusals checks the gate order: structural validation first,
// then the registry and address requirements.
func TestBuildPlanRefusals(t *testing.T) {
	invalid := deployer.NewState() // blank name and description
	_, errs := deployer.BuildPlan(invalid, testDeployer, testRegistry)
	require.NotEmpty(t, errs)
	assert.Contains(t, kindSet(errs), deployer.KindBlankField)

	s := readyState()
	_, errs = deployer.BuildPlan(s, testDeployer, "")
	require.Len(t, errs, 1)
	assert.Equal(t, deployer.KindRegistryMissing, errs[0].Kind)

	_, errs = deployer.BuildPlan(s, testDeployer, "0x1234")
	require.Len(t, errs, 1)
	assert.Equal(t, deployer.KindBadAddress, errs[0].Kind)

	_, errs = deployer.BuildPlan(s, "nobody", testRegistry)
	require.Len(t, errs, 1)
	assert.Equal(t, deployer.KindBadAddress, errs[0].Kind)
}

// TestBuildPlanBadWearerAddress checks malformed distribution addresses are
// reported against the owning role.
func TestBuildPlanBadWearerAddress(t *testing.T) {
	s := readyState()
	s = deployer.Reduce(s, deployer.UpdateRoleDistribution{Index: 0, Patch: deployer.DistributionPatch{
		AdditionalAddresses: &[]string{"0xnope"},
	}})
	_, errs := deployer.BuildPlan(s, testDeployer, testRegistry)
	require.Len(t, errs, 1)
	assert.Equal(t, deployer.KindBadAddress, errs[0].Kind)
	assert.Contains(t, errs[0].Msg, "Member")
}

// TestBuildPlanClassFields checks min balance, asset and hat ids project into
// their 256-bit wire forms.
func TestBuildPlanClassFields(t *testing.T) {
	s := readyState()
	minBal := big.NewInt(1_000_000)
	s = deployer.Reduce(s, deployer.UpdateVotingClass{Index: 0, Patch: deployer.ClassPatch{
		MinBalance: minBal,
		Asset:      sp("0x00000000000000000000000000000000000000C3"),
		Hats:       &[]string{"7"},
	}})

	plan, errs := deployer.BuildPlan(s, testDeployer, testRegistry)
	require.Empty(t, errs)
	c := plan.Blueprint.HybridClasses[0]
	assert.Equal(t, uint64(1_000_000), c.MinBalance.Uint64())
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000C3"), c.Asset)
	require.Len(t, c.HatIDs, 1)
	assert.Equal(t, uint64(7), c.HatIDs[0].Uint64())
}

// --- metadata store ---

type fakeStore struct {
	cid  string
	err  error
	seen []byte
}

func (f *fakeStore) Put(data []byte) (string, error) {
	f.seen = data
	return f.cid, f.err
}

// TestMetadataDigest checks the optional store path and the nil-store zero
// digest.
func TestMetadataDigest(t *testing.T) {
	meta := deployer.MetadataBundle{Description: "hello"}

	var zero [32]byte
	got, err := deployer.MetadataDigest(meta, nil)
	require.NoError(t, err)
	assert.Equal(t, zero, got)

	digest := sha256.Sum256([]byte("stored"))
	store := &fakeStore{cid: base58.Encode(append([]byte{0x12, 0x20}, digest[:]...))}
	got, err = deployer.MetadataDigest(meta, store)
	require.NoError(t, err)
	assert.Equal(t, digest, got)
	assert.Contains(t, string(store.seen), `"description":"hello"`)

	_, err = deployer.MetadataDigest(meta, &fakeStore{err: errors.New("ipfs down")})
	require.Error(t, err)
}
