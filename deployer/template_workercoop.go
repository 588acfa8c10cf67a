package deployer

////////////////////////////////////////////////////////////////////////////////
// Template: worker cooperative
////////////////////////////////////////////////////////////////////////////////

// workerCoopTemplate is the flat, democratic default. Three roles: every
// worker-member votes, coordinators handle approvals, candidates are vouched
// in by existing members.
func workerCoopTemplate() *Template {
	return &Template{
		ID:             "worker-coop",
		Name:           "Worker Cooperative",
		Tagline:        "One worker, one vote",
		Description:    "A member-owned organization where the people doing the work make the decisions. Democratic by default, with a light coordinator layer for day-to-day approvals.",
		PhilosophyHint: 85,
		Roles: []Role{
			{
				Name:    "Coordinator",
				CanVote: true,
				Vouching: VouchingPolicy{
					Quorum: 1,
				},
				Defaults: MemberDefaults{Eligible: true, InStanding: true},
				Distribution: Distribution{
					MintToDeployer:      true,
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 3, Mutable: true},
			},
			{
				Name:    "Worker-Member",
				CanVote: true,
				Vouching: VouchingPolicy{
					Enabled:              true,
					Quorum:               2,
					VoucherRole:          1,
					CombineWithHierarchy: false,
				},
				Defaults:  MemberDefaults{Eligible: true, InStanding: true},
				AdminRole: intptr(0),
				Distribution: Distribution{
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 200, Mutable: true},
			},
			{
				Name:    "Candidate",
				CanVote: false,
				Vouching: VouchingPolicy{
					Quorum: 1,
				},
				Defaults:  MemberDefaults{Eligible: true, InStanding: false},
				AdminRole: intptr(1),
				Distribution: Distribution{
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 50, Mutable: true},
			},
		},
		Permissions: PermissionSets{
			QuickJoin:             []int{2},
			TokenMember:           []int{0, 1},
			TokenApprover:         []int{0},
			TaskCreator:           []int{0, 1},
			EducationCreator:      []int{0},
			EducationMember:       []int{0, 1, 2},
			HybridProposalCreator: []int{0, 1},
			DDVoting:              []int{0, 1},
			DDCreator:             []int{0, 1},
		},
		Voting: VotingConfig{
			Mode:                ModeHybrid,
			HybridQuorum:        50,
			DDQuorum:            50,
			DemocracyWeight:     85,
			ParticipationWeight: 15,
			Classes: []VotingClass{
				{Strategy: StrategyDirect, SlicePct: 85, Hats: []string{}},
				{Strategy: StrategyErcBalance, SlicePct: 15, Hats: []string{}},
			},
		},
		Features: Features{EducationHub: true, ElectionHub: false},
		Questions: []DiscoveryQuestion{
			{
				ID:     "group_size",
				Prompt: "How many people will be active in the first year?",
				Options: []QuestionOption{
					{Value: "small", Label: "Fewer than 15", Impact: "Everyone can realistically weigh in on every decision."},
					{Value: "medium", Label: "15 to 50", Impact: "Full-group votes still work but need clear deadlines."},
					{Value: "large", Label: "More than 50", Impact: "Expect to delegate day-to-day calls to coordinators."},
				},
			},
			{
				ID:     "trust_level",
				Prompt: "How well do the founding members know each other?",
				Options: []QuestionOption{
					{Value: "high", Label: "We have worked together before", Impact: "Lower quorums and lighter vouching are safe."},
					{Value: "medium", Label: "Some of us have", Impact: "Keep vouching on for new members."},
					{Value: "low", Label: "Mostly strangers", Impact: "Stricter quorums protect against capture early on."},
				},
			},
			{
				ID:     "decision_speed",
				Prompt: "How quickly do most of your decisions need to land?",
				Options: []QuestionOption{
					{Value: "deliberate", Label: "Days are fine", Impact: "Longer voting windows and higher quorums fit."},
					{Value: "fast", Label: "Same day, usually", Impact: "Delegating more to coordinators keeps things moving."},
				},
			},
			{
				ID:     "revenue_model",
				Prompt: "How does money come in?",
				Options: []QuestionOption{
					{Value: "client_work", Label: "Client work / services", Impact: "Task bounties and approvals matter most."},
					{Value: "product", Label: "A shared product", Impact: "Longer-horizon proposals deserve weight."},
					{Value: "none_yet", Label: "No revenue yet", Impact: "Keep the structure light until money shows up."},
				},
			},
		},
		Variations: []Variation{
			{
				ID:   "default",
				Name: "Balanced co-op",
				// no conditions: always selectable, wins when nothing scores
				MatchConditions: map[string][]string{},
				Settings:        VariationSettings{},
				Reasoning:       "The stock worker-coop setup: strong democracy with a small participation slice for members who carry more of the work.",
			},
			{
				ID:   "small-high-trust",
				Name: "Small, high-trust crew",
				MatchConditions: map[string][]string{
					"group_size":  {"small"},
					"trust_level": {"high"},
				},
				Settings: VariationSettings{
					DemocracyWeight:     intptr(95),
					ParticipationWeight: intptr(5),
					HybridQuorum:        intptr(60),
					DDQuorum:            intptr(60),
				},
				Reasoning: "A small crew that already trusts itself can run almost pure democracy; the higher quorum is cheap when everyone shows up anyway.",
			},
			{
				ID:   "large-delegated",
				Name: "Large, delegated co-op",
				MatchConditions: map[string][]string{
					"group_size":     {"large"},
					"decision_speed": {"fast"},
				},
				Settings: VariationSettings{
					DemocracyWeight:     intptr(60),
					ParticipationWeight: intptr(40),
					HybridQuorum:        intptr(30),
					DDQuorum:            intptr(30),
				},
				Reasoning: "Past fifty people, waiting for a 60% quorum on every call stalls the org; shift weight toward active participants and lower the bar.",
			},
			{
				ID:   "cautious-strangers",
				Name: "Co-op of strangers",
				MatchConditions: map[string][]string{
					"trust_level": {"low", "medium"},
				},
				Settings: VariationSettings{
					DemocracyWeight: intptr(75),
					HybridQuorum:    intptr(50),
					DDQuorum:        intptr(60),
					EducationHub:    boolptr(true),
				},
				Reasoning: "When founders barely know each other, keep direct democracy strong but raise the direct-democracy quorum so a small clique cannot steer polls.",
			},
		},
		SelfAssessment: []AssessmentQuestion{
			{
				ID:     "payroll_dependency",
				Prompt: "Do members depend on the co-op for their primary income?",
				Options: []AssessmentOption{
					{Value: "yes_all", Label: "Yes, most of us", Risk: RiskHigh, Feedback: "Income-critical orgs need a dispute process before the first dispute, not after."},
					{Value: "partial", Label: "For some of us", Risk: RiskMedium, Feedback: "Mixed stakes breed resentment; write down how paid and unpaid work is weighed."},
					{Value: "no", Label: "No, side project", Risk: RiskLow, Feedback: "Low stakes give you room to experiment with governance."},
				},
			},
			{
				ID:     "exit_plan",
				Prompt: "Have you agreed what happens when a member leaves?",
				Options: []AssessmentOption{
					{Value: "documented", Label: "Yes, written down", Risk: RiskLow, Feedback: "Good. Revisit it after the first real departure."},
					{Value: "verbal", Label: "Talked about it", Risk: RiskMedium, Feedback: "Verbal agreements about money rarely survive contact with money."},
					{Value: "no", Label: "Not yet", Risk: RiskHigh, Feedback: "Departures without an exit rule are the most common co-op killer."},
				},
			},
		},
		GrowthPath: []GrowthStage{
			{
				Name:        "Founding circle",
				Description: "Fewer than ten members, everyone in every conversation.",
				Signals:     []string{"decisions land in a single meeting", "no formal proposals yet"},
			},
			{
				Name:        "First hires",
				Description: "New members who were not founders join through vouching.",
				Signals:     []string{"candidates waiting on vouches", "first contested vote"},
			},
			{
				Name:        "Steady operation",
				Description: "Coordinators rotate, proposals drive spending, quorums get hit without chasing people.",
				Signals:     []string{"quarterly coordinator election", "proposal backlog stays under a week"},
			},
		},
		Pitfalls: []Pitfall{
			{
				Title:       "Coordinator entrenchment",
				Description: "The same people hold the coordinator hat for years and informal power hardens.",
				Avoidance:   "Keep the coordinator hat supply small and put rotation on the calendar from day one.",
			},
			{
				Title:       "Quorum decay",
				Description: "Turnout slides, votes stop passing, and the org quietly stops deciding anything.",
				Avoidance:   "Lower the quorum deliberately when participation drops instead of letting it fail silently.",
			},
		},
		Concepts: []Concept{
			{Title: "Vouching", Summary: "Existing members endorse a candidate before they can join; the quorum is how many endorsements it takes."},
			{Title: "Hybrid voting", Summary: "Total voting power splits between one-person-one-vote and participation-weighted classes."},
		},
	}
}
