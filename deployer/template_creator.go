package deployer

////////////////////////////////////////////////////////////////////////////////
// Template: creator collective
////////////////////////////////////////////////////////////////////////////////

// creatorCollectiveTemplate suits a group of independent creators pooling
// audience, infrastructure and revenue while keeping their own identities.
func creatorCollectiveTemplate() *Template {
	return &Template{
		ID:             "creator-collective",
		Name:           "Creator Collective",
		Tagline:        "Independent creators, shared leverage",
		Description:    "A collective of creators who pool distribution, tooling and revenue splits. Creators run the show; patrons get a voice in polls without steering the treasury.",
		PhilosophyHint: 70,
		Roles: []Role{
			{
				Name:     "Founding Creator",
				CanVote:  true,
				Vouching: VouchingPolicy{Quorum: 1},
				Defaults: MemberDefaults{Eligible: true, InStanding: true},
				Distribution: Distribution{
					MintToDeployer:      true,
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 5, Mutable: true},
			},
			{
				Name:    "Creator",
				CanVote: true,
				Vouching: VouchingPolicy{
					Enabled:              true,
					Quorum:               2,
					VoucherRole:          0,
					CombineWithHierarchy: true,
				},
				Defaults:  MemberDefaults{Eligible: true, InStanding: true},
				AdminRole: intptr(0),
				Distribution: Distribution{
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 50, Mutable: true},
			},
			{
				Name:      "Patron",
				CanVote:   true,
				Vouching:  VouchingPolicy{Quorum: 1},
				Defaults:  MemberDefaults{Eligible: true, InStanding: true},
				AdminRole: intptr(0),
				Distribution: Distribution{
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 5000, Mutable: true},
			},
		},
		Permissions: PermissionSets{
			QuickJoin:             []int{2},
			TokenMember:           []int{0, 1},
			TokenApprover:         []int{0},
			TaskCreator:           []int{0, 1},
			EducationCreator:      []int{0, 1},
			EducationMember:       []int{0, 1, 2},
			HybridProposalCreator: []int{0, 1},
			DDVoting:              []int{0, 1, 2},
			DDCreator:             []int{0, 1},
		},
		Voting: VotingConfig{
			Mode:                ModeHybrid,
			HybridQuorum:        50,
			DDQuorum:            50,
			DemocracyWeight:     70,
			ParticipationWeight: 30,
			Classes: []VotingClass{
				{Strategy: StrategyDirect, SlicePct: 70, Hats: []string{}},
				{Strategy: StrategyErcBalance, SlicePct: 30, Hats: []string{}},
			},
		},
		Features: Features{EducationHub: true, ElectionHub: false},
		Questions: []DiscoveryQuestion{
			{
				ID:     "revenue_split",
				Prompt: "How is shared revenue split today?",
				Options: []QuestionOption{
					{Value: "equal", Label: "Equal shares", Impact: "Strong democracy matches the economics."},
					{Value: "by_contribution", Label: "By contribution", Impact: "Participation weight should mirror the split."},
					{Value: "none", Label: "No shared revenue yet", Impact: "Keep it simple until there is something to split."},
				},
			},
			{
				ID:     "audience_role",
				Prompt: "What role should the audience have?",
				Options: []QuestionOption{
					{Value: "voice", Label: "A real voice in polls", Impact: "Patrons stay in the ddVoting set."},
					{Value: "input", Label: "Input, not votes", Impact: "Patrons keep quick-join but drop out of polls."},
				},
			},
			{
				ID:     "output_cadence",
				Prompt: "How often does the collective ship together?",
				Options: []QuestionOption{
					{Value: "weekly", Label: "Weekly or faster", Impact: "Low-friction task creation for every creator."},
					{Value: "monthly", Label: "Monthly-ish", Impact: "Standard proposal cadence works."},
					{Value: "rarely", Label: "A few times a year", Impact: "Long voting windows, high-signal proposals."},
				},
			},
		},
		Variations: []Variation{
			{
				ID:              "default",
				Name:            "Creator-led collective",
				MatchConditions: map[string][]string{},
				Settings:        VariationSettings{},
				Reasoning:       "Creators hold most of the weight; patrons participate without steering.",
			},
			{
				ID:   "equal-partners",
				Name: "Equal partners",
				MatchConditions: map[string][]string{
					"revenue_split": {"equal"},
				},
				Settings: VariationSettings{
					DemocracyWeight:     intptr(90),
					ParticipationWeight: intptr(10),
					HybridQuorum:        intptr(60),
				},
				Reasoning: "Equal revenue shares deserve near-equal votes; the small token slice keeps a door open for future weighting.",
			},
			{
				ID:   "contribution-weighted",
				Name: "Contribution-weighted",
				MatchConditions: map[string][]string{
					"revenue_split": {"by_contribution"},
				},
				Settings: VariationSettings{
					DemocracyWeight: intptr(45),
					DDQuorum:        intptr(50),
				},
				Reasoning: "If pay already tracks contribution, votes tracking it too is consistent rather than plutocratic.",
			},
			{
				ID:   "audience-included",
				Name: "Audience included",
				MatchConditions: map[string][]string{
					"audience_role":  {"voice"},
					"output_cadence": {"weekly", "monthly"},
				},
				Settings: VariationSettings{
					DDQuorum:    intptr(30),
					ElectionHub: boolptr(true),
				},
				Reasoning: "A large patron base votes rarely but broadly; a lower poll quorum keeps their voice real instead of decorative.",
			},
		},
		SelfAssessment: []AssessmentQuestion{
			{
				ID:     "brand_ownership",
				Prompt: "Who owns the collective's name and channels?",
				Options: []AssessmentOption{
					{Value: "collective", Label: "The collective, formally", Risk: RiskLow, Feedback: "Clean. The blueprint's org identity matches reality."},
					{Value: "one_person", Label: "One member, informally", Risk: RiskHigh, Feedback: "Whoever owns the channel owns the collective, whatever the vote says."},
					{Value: "unclear", Label: "Nobody has checked", Risk: RiskMedium, Feedback: "Sort out account ownership before routing revenue through shared governance."},
				},
			},
			{
				ID:     "solo_fallback",
				Prompt: "Can members leave and keep their own audience?",
				Options: []AssessmentOption{
					{Value: "yes", Label: "Yes, clearly", Risk: RiskLow, Feedback: "Low exit costs keep participation voluntary and honest."},
					{Value: "entangled", Label: "It would be messy", Risk: RiskMedium, Feedback: "Write the untangling rules while everyone still likes each other."},
				},
			},
		},
		GrowthPath: []GrowthStage{
			{
				Name:        "Shared backroom",
				Description: "A few creators sharing tools and cross-promotion informally.",
				Signals:     []string{"shared infra bills", "first joint release"},
			},
			{
				Name:        "Pooled revenue",
				Description: "Money flows through the collective and splits by agreed rules.",
				Signals:     []string{"first revenue split executed on-chain", "patron hats minted"},
			},
			{
				Name:        "Label",
				Description: "The collective's brand outweighs any single member's; new creators apply to join.",
				Signals:     []string{"inbound applications", "brand deals addressed to the collective"},
			},
		},
		Pitfalls: []Pitfall{
			{
				Title:       "Biggest-audience capture",
				Description: "The member with the largest following treats the collective as their supporting cast.",
				Avoidance:   "Keep the direct slice high enough that reach does not equal rule.",
			},
			{
				Title:       "Patron plutocracy",
				Description: "Superfans buy outsized influence over creative direction.",
				Avoidance:   "Keep patrons in polls, not treasury votes, unless the collective explicitly wants patron steering.",
			},
		},
		Concepts: []Concept{
			{Title: "Poll vs proposal", Summary: "Polls (direct democracy) gather binding sentiment; hybrid proposals move funds and change structure."},
			{Title: "Hat supply", Summary: "Each role's maximum wearer count; small supplies make a role scarce by construction."},
		},
	}
}
