package deployer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgforge/deployer"
)

// =============================================================================
// Selector Tests
// =============================================================================

func TestActiveTemplate(t *testing.T) {
	s := deployer.NewState()
	assert.Nil(t, deployer.ActiveTemplate(s))

	s = deployer.Reduce(s, deployer.SelectTemplate{ID: "startup-dao"})
	tpl := deployer.ActiveTemplate(s)
	require.NotNil(t, tpl)
	assert.Equal(t, "startup-dao", tpl.ID)

	s.Org.TemplateID = "vanished"
	assert.Nil(t, deployer.ActiveTemplate(s))
}

// TestRoleJoinMethod checks the precedence: vouching, then quick join, then
// invitation only.
func TestRoleJoinMethod(t *testing.T) {
	s := deployer.Reduce(deployer.NewState(), deployer.SelectTemplate{ID: "worker-coop"})

	assert.Equal(t, deployer.JoinVouching, deployer.RoleJoinMethod(s, 1))
	assert.Equal(t, deployer.JoinOpen, deployer.RoleJoinMethod(s, 2))
	assert.Equal(t, deployer.JoinInvitation, deployer.RoleJoinMethod(s, 0))
	assert.Equal(t, deployer.JoinInvitation, deployer.RoleJoinMethod(s, 99))
}

func TestRoleNamesInPermission(t *testing.T) {
	s := deployer.Reduce(deployer.NewState(), deployer.SelectTemplate{ID: "worker-coop"})
	assert.Equal(t, []string{"Coordinator", "Worker-Member"}, deployer.RoleNamesInPermission(s, deployer.PermDDVoting))
	assert.Equal(t, []string{"Candidate"}, deployer.RoleNamesInPermission(s, deployer.PermQuickJoin))

	// stale indices are skipped rather than crashing the render
	s = deployer.Reduce(s, deployer.SetPermissionRoles{Key: deployer.PermDDVoting, Roles: []int{0, 7}})
	assert.Equal(t, []string{"Coordinator"}, deployer.RoleNamesInPermission(s, deployer.PermDDVoting))
}

func TestBundleSummary(t *testing.T) {
	s := deployer.NewState()
	assert.Empty(t, deployer.BundleSummary(s, 0))

	s = deployer.Reduce(s, deployer.ToggleBundle{Bundle: deployer.BundleMember, Index: 0})
	s = deployer.Reduce(s, deployer.ToggleBundle{Bundle: deployer.BundleCreator, Index: 0})
	assert.Equal(t, []deployer.Bundle{deployer.BundleMember, deployer.BundleCreator}, deployer.BundleSummary(s, 0))

	// granting everything lights up all three
	s = deployer.Reduce(s, deployer.GrantAllForRole{Index: 0})
	assert.Equal(t, deployer.AllBundles, deployer.BundleSummary(s, 0))
}

func TestClassParticipantCount(t *testing.T) {
	s := deployer.Reduce(deployer.NewState(), deployer.SelectTemplate{ID: "worker-coop"})

	// direct class: Coordinator and Worker-Member vote, Candidate does not
	assert.Equal(t, 2, deployer.ClassParticipantCount(s, 0))
	// balance class: tokenMember = {0, 1}
	assert.Equal(t, 2, deployer.ClassParticipantCount(s, 1))
	assert.Equal(t, 0, deployer.ClassParticipantCount(s, 9))

	assert.Equal(t, []string{"Coordinator", "Worker-Member"}, deployer.VoterNames(s))
}

// TestWouldSliderChange checks the no-op detector ignores class identities.
func TestWouldSliderChange(t *testing.T) {
	s := deployer.NewState()
	s = deployer.Reduce(s, deployer.ApplyPhilosophy{Slider: 80})

	assert.False(t, deployer.WouldSliderChange(s, 80), "same slider, fresh class ids")
	assert.True(t, deployer.WouldSliderChange(s, 81))
	assert.True(t, deployer.WouldSliderChange(s, 100), "mode flip")

	// a hand-tuned quorum makes the slider value lossy again
	q := 45
	s = deployer.Reduce(s, deployer.SetVotingQuorum{HybridQuorum: &q})
	assert.True(t, deployer.WouldSliderChange(s, 80))
}

// TestRunJourney walks the scripted discovery path end to end.
func TestRunJourney(t *testing.T) {
	s := readyState()
	s = deployer.Reduce(s, deployer.SelectTemplate{ID: "worker-coop"})

	out := deployer.RunJourney(s, map[string]string{
		"group_size":  "small",
		"trust_level": "high",
		"bogus":       "ignored",
	})
	assert.Equal(t, "small-high-trust", out.Journey.MatchedVariation)
	assert.Equal(t, 95, out.Voting.DemocracyWeight)
	assert.Equal(t, 60, out.Voting.HybridQuorum)
	assert.Equal(t, "small", out.Journey.DiscoveryAnswers["group_size"])
	assert.NotContains(t, out.Journey.DiscoveryAnswers, "bogus")

	// without a template the journey is a no-op
	bare := deployer.NewState()
	assert.Equal(t, bare, deployer.RunJourney(bare, map[string]string{"a": "b"}))
}
