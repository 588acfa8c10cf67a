package deployer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orgforge/deployer"
)

// =============================================================================
// Philosophy Mapper Tests
// =============================================================================

// TestSliderMidBand reproduces the 80% scenario: hybrid mode, 80/20 split,
// 60/60 quorums, two classes.
func TestSliderMidBand(t *testing.T) {
	v := deployer.SliderToVoting(80)
	assert.Equal(t, deployer.ModeHybrid, v.Mode)
	assert.Equal(t, 80, v.DemocracyWeight)
	assert.Equal(t, 20, v.ParticipationWeight)
	assert.Equal(t, 60, v.HybridQuorum)
	assert.Equal(t, 60, v.DDQuorum)
	if len(v.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(v.Classes))
	}
	assert.Equal(t, deployer.StrategyDirect, v.Classes[0].Strategy)
	assert.Equal(t, 80, v.Classes[0].SlicePct)
	assert.Equal(t, deployer.StrategyErcBalance, v.Classes[1].Strategy)
	assert.Equal(t, 20, v.Classes[1].SlicePct)
}

// TestSliderPureDemocracy reproduces the 100 scenario: direct mode, single
// class at 100%.
func TestSliderPureDemocracy(t *testing.T) {
	v := deployer.SliderToVoting(100)
	assert.Equal(t, deployer.ModeDirect, v.Mode)
	assert.Equal(t, 100, v.DemocracyWeight)
	assert.Equal(t, 0, v.ParticipationWeight)
	if len(v.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(v.Classes))
	}
	assert.Equal(t, deployer.StrategyDirect, v.Classes[0].Strategy)
	assert.Equal(t, 100, v.Classes[0].SlicePct)
}

// TestSliderPureToken checks the 0 end: hybrid mode, single balance class.
func TestSliderPureToken(t *testing.T) {
	v := deployer.SliderToVoting(0)
	assert.Equal(t, deployer.ModeHybrid, v.Mode)
	assert.Equal(t, 30, v.HybridQuorum)
	assert.Equal(t, 30, v.DDQuorum)
	if len(v.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(v.Classes))
	}
	assert.Equal(t, deployer.StrategyErcBalance, v.Classes[0].Strategy)
	assert.Equal(t, 100, v.Classes[0].SlicePct)
}

// TestSliderInvertible checks the round trip and the slice-sum invariant for
// every slider value.
func TestSliderInvertible(t *testing.T) {
	for s := 0; s <= 100; s++ {
		v := deployer.SliderToVoting(s)
		if got := deployer.VotingToSlider(v); got != s {
			t.Fatalf("slider %d came back as %d", s, got)
		}
		sum := 0
		for _, c := range v.Classes {
			sum += c.SlicePct
			if c.ID == "" {
				t.Fatalf("slider %d emitted a class without identity", s)
			}
			assert.Nil(t, c.MinBalance)
			assert.Empty(t, c.Asset)
			assert.Empty(t, c.Hats)
		}
		if sum != 100 {
			t.Fatalf("slider %d slices sum to %d", s, sum)
		}
		assert.Equal(t, 100, v.DemocracyWeight+v.ParticipationWeight, "slider %d", s)
	}
}

// TestSliderQuorumBands checks the 30/50/60 quorum table edges.
func TestSliderQuorumBands(t *testing.T) {
	assert.Equal(t, 30, deployer.SliderToVoting(1).HybridQuorum)
	assert.Equal(t, 30, deployer.SliderToVoting(30).HybridQuorum)
	assert.Equal(t, 50, deployer.SliderToVoting(31).HybridQuorum)
	assert.Equal(t, 50, deployer.SliderToVoting(70).HybridQuorum)
	assert.Equal(t, 60, deployer.SliderToVoting(71).HybridQuorum)
	assert.Equal(t, 60, deployer.SliderToVoting(99).HybridQuorum)
}

// TestVotingToSliderFallbacks covers hand-crafted advanced-mode shapes.
func TestVotingToSliderFallbacks(t *testing.T) {
	// weights carry signal even when the class shape is custom
	custom := deployer.VotingConfig{
		Mode:                deployer.ModeHybrid,
		DemocracyWeight:     42,
		ParticipationWeight: 58,
		Classes: []deployer.VotingClass{
			{Strategy: deployer.StrategyErcBalance, SlicePct: 60},
			{Strategy: deployer.StrategyDirect, SlicePct: 40},
		},
	}
	assert.Equal(t, 42, deployer.VotingToSlider(custom))

	// nothing usable at all falls back to the middle
	assert.Equal(t, 50, deployer.VotingToSlider(deployer.VotingConfig{}))
}

// TestPermissionHints checks the delegated band restricts poll creation to
// the first root while voting stays universal.
func TestPermissionHints(t *testing.T) {
	roles := chain([]string{"Board", "Staff", "Crew"}, []int{-1, 0, 1})

	hints := deployer.PermissionHintsFor(20, roles)
	assert.Equal(t, []int{0}, hints.DDCreator)
	assert.Equal(t, []int{0, 1, 2}, hints.DDVoting)

	hints = deployer.PermissionHintsFor(55, roles)
	assert.Equal(t, []int{0, 1, 2}, hints.DDCreator)
	assert.Equal(t, []int{0, 1, 2}, hints.DDVoting)
}
