package deployer

////////////////////////////////////////////////////////////////////////////////
// Philosophy mapper: one slider, whole voting configuration
////////////////////////////////////////////////////////////////////////////////

// Slider bands. At or below DelegatedBand the org leans on token holders and
// appointed roles; at or above DemocraticBand it leans on one-person-one-vote.
const (
	delegatedBandMax  = 30
	democraticBandMin = 71
)

// quorumForSlider picks the default quorum for the slider band: delegated
// orgs settle for 30, democratic ones demand 60, the middle takes 50.
func quorumForSlider(s int) int {
	switch {
	case s <= delegatedBandMax:
		return 30
	case s >= democraticBandMin:
		return 60
	default:
		return 50
	}
}

// freshClass builds a class with a new opaque identity, zero min balance, no
// asset and no hat list, as every mapper-emitted class must be.
func freshClass(strategy VotingStrategy, slice int) VotingClass {
	return VotingClass{
		ID:       newID(),
		Strategy: strategy,
		SlicePct: slice,
		Hats:     []string{},
	}
}

// SliderToVoting maps the governance-philosophy slider (0..100) to a full
// voting configuration. The slider value IS the democracy weight; class
// slices always sum to exactly 100. Out-of-range input is clamped so the
// function stays total.
func SliderToVoting(s int) VotingConfig {
	s = clampInt(s, 0, 100)
	switch {
	case s == 100:
		return VotingConfig{
			Mode:                ModeDirect,
			HybridQuorum:        60,
			DDQuorum:            60,
			DemocracyWeight:     100,
			ParticipationWeight: 0,
			Classes:             []VotingClass{freshClass(StrategyDirect, 100)},
		}
	case s == 0:
		return VotingConfig{
			Mode:                ModeHybrid,
			HybridQuorum:        30,
			DDQuorum:            30,
			DemocracyWeight:     0,
			ParticipationWeight: 100,
			Classes:             []VotingClass{freshClass(StrategyErcBalance, 100)},
		}
	default:
		q := quorumForSlider(s)
		return VotingConfig{
			Mode:                ModeHybrid,
			HybridQuorum:        q,
			DDQuorum:            q,
			DemocracyWeight:     s,
			ParticipationWeight: 100 - s,
			Classes: []VotingClass{
				freshClass(StrategyDirect, s),
				freshClass(StrategyErcBalance, 100-s),
			},
		}
	}
}

// VotingToSlider inverts SliderToVoting for the shapes it produces. For
// hand-crafted advanced-mode configurations it falls back to the democracy
// weight, or 50 when that carries no signal.
func VotingToSlider(v VotingConfig) int {
	if v.Mode == ModeDirect {
		if len(v.Classes) == 1 && v.Classes[0].Strategy == StrategyDirect && v.Classes[0].SlicePct == 100 {
			return 100
		}
	}
	if v.Mode == ModeHybrid {
		if len(v.Classes) == 1 && v.Classes[0].Strategy == StrategyErcBalance && v.Classes[0].SlicePct == 100 {
			return 0
		}
		if len(v.Classes) == 2 &&
			v.Classes[0].Strategy == StrategyDirect &&
			v.Classes[1].Strategy == StrategyErcBalance &&
			v.Classes[0].SlicePct+v.Classes[1].SlicePct == 100 {
			return v.Classes[0].SlicePct
		}
	}
	if v.DemocracyWeight >= 0 && v.DemocracyWeight <= 100 && v.DemocracyWeight+v.ParticipationWeight == 100 {
		return v.DemocracyWeight
	}
	return 50
}

// PhilosophyHints is the recommended membership for the direct-democracy
// permission sets at a given slider position.
type PhilosophyHints struct {
	DDCreator []int
	DDVoting  []int
}

// PermissionHintsFor suggests ddCreator/ddVoting membership. Delegated band:
// only the first root role creates polls, everyone votes. Hybrid and
// democratic bands: all roles create and vote. The reducer applies these only
// on an explicit ApplyPhilosophy with hints enabled.
func PermissionHintsFor(s int, roles []Role) PhilosophyHints {
	s = clampInt(s, 0, 100)
	all := make([]int, len(roles))
	for i := range roles {
		all[i] = i
	}
	if s <= delegatedBandMax {
		_, roots := ChildrenByParent(roles)
		creator := []int{}
		if len(roots) > 0 {
			creator = []int{roots[0]}
		}
		return PhilosophyHints{DDCreator: creator, DDVoting: all}
	}
	return PhilosophyHints{DDCreator: all, DDVoting: all}
}
