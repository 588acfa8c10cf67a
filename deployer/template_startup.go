package deployer

////////////////////////////////////////////////////////////////////////////////
// Template: startup DAO
////////////////////////////////////////////////////////////////////////////////

// startupDAOTemplate leans delegated: founders steer, early team votes, the
// token carries most of the weight until the org decides otherwise.
func startupDAOTemplate() *Template {
	return &Template{
		ID:             "startup-dao",
		Name:           "Startup DAO",
		Tagline:        "Move fast, answer to the token",
		Description:    "A venture-style organization with a small founding core, an early team earning in, and token-weighted decisions. Built to ship first and democratize later.",
		PhilosophyHint: 20,
		Roles: []Role{
			{
				Name:     "Founder",
				CanVote:  true,
				Vouching: VouchingPolicy{Quorum: 1},
				Defaults: MemberDefaults{Eligible: true, InStanding: true},
				Distribution: Distribution{
					MintToDeployer:      true,
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 4, Mutable: false},
			},
			{
				Name:    "Core Team",
				CanVote: true,
				Vouching: VouchingPolicy{
					Enabled:              true,
					Quorum:               1,
					VoucherRole:          0,
					CombineWithHierarchy: false,
				},
				Defaults:  MemberDefaults{Eligible: true, InStanding: true},
				AdminRole: intptr(0),
				Distribution: Distribution{
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 25, Mutable: true},
			},
			{
				Name:      "Advisor",
				CanVote:   false,
				Vouching:  VouchingPolicy{Quorum: 1},
				Defaults:  MemberDefaults{Eligible: true, InStanding: true},
				AdminRole: intptr(0),
				Distribution: Distribution{
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 10, Mutable: true},
			},
		},
		Permissions: PermissionSets{
			QuickJoin:             []int{},
			TokenMember:           []int{0, 1},
			TokenApprover:         []int{0},
			TaskCreator:           []int{0, 1},
			EducationCreator:      []int{0, 1},
			EducationMember:       []int{0, 1, 2},
			HybridProposalCreator: []int{0},
			DDVoting:              []int{0, 1, 2},
			DDCreator:             []int{0},
		},
		Voting: VotingConfig{
			Mode:                ModeHybrid,
			HybridQuorum:        30,
			DDQuorum:            30,
			DemocracyWeight:     20,
			ParticipationWeight: 80,
			Classes: []VotingClass{
				{Strategy: StrategyDirect, SlicePct: 20, Hats: []string{}},
				{Strategy: StrategyErcBalance, SlicePct: 80, Hats: []string{}},
			},
		},
		Features: Features{EducationHub: false, ElectionHub: false},
		Questions: []DiscoveryQuestion{
			{
				ID:     "funding_stage",
				Prompt: "Where is the money coming from right now?",
				Options: []QuestionOption{
					{Value: "bootstrapped", Label: "Our own pockets", Impact: "Founders keep most of the steering weight."},
					{Value: "raised", Label: "Outside investors", Impact: "Token weight reflects the cap table; keep approvals tight."},
					{Value: "revenue", Label: "Customers", Impact: "Operational speed matters more than governance ceremony."},
				},
			},
			{
				ID:     "team_status",
				Prompt: "Is the early team paid yet?",
				Options: []QuestionOption{
					{Value: "salaried", Label: "Yes, salaried", Impact: "Standard approvals; the org behaves like a company."},
					{Value: "tokens", Label: "Paid in tokens", Impact: "Participation weight doubles as compensation, treat it carefully."},
					{Value: "volunteer", Label: "Sweat equity for now", Impact: "Keep vouching light so contributors can actually get in."},
				},
			},
			{
				ID:     "decentralize_intent",
				Prompt: "Do you actually intend to decentralize control later?",
				Options: []QuestionOption{
					{Value: "yes_roadmap", Label: "Yes, it is on the roadmap", Impact: "Start with mutable hats so the structure can loosen."},
					{Value: "maybe", Label: "If it earns its keep", Impact: "Revisit the slider each funding cycle."},
					{Value: "no", Label: "Honestly, no", Impact: "Stay delegated; pretending otherwise just slows you down."},
				},
			},
		},
		Variations: []Variation{
			{
				ID:              "default",
				Name:            "Standard startup",
				MatchConditions: map[string][]string{},
				Settings:        VariationSettings{},
				Reasoning:       "Founder-steered with a real but minority democratic slice for the team.",
			},
			{
				ID:   "investor-backed",
				Name: "Investor-backed",
				MatchConditions: map[string][]string{
					"funding_stage": {"raised"},
				},
				Settings: VariationSettings{
					DemocracyWeight: intptr(10),
					HybridQuorum:    intptr(30),
					DDQuorum:        intptr(30),
				},
				Reasoning: "With outside capital on the table, voting power needs to track the token; the direct slice stays as a team voice, not a veto.",
			},
			{
				ID:   "token-compensated",
				Name: "Token-compensated team",
				MatchConditions: map[string][]string{
					"team_status": {"tokens", "volunteer"},
				},
				Settings: VariationSettings{
					DemocracyWeight: intptr(35),
					DDQuorum:        intptr(50),
				},
				Reasoning: "When the team is paid in influence, give headcount a bigger slice so early contributors are not outvoted by their own compensation pool.",
			},
			{
				ID:   "exit-to-community",
				Name: "Exit to community",
				MatchConditions: map[string][]string{
					"decentralize_intent": {"yes_roadmap"},
				},
				Settings: VariationSettings{
					DemocracyWeight: intptr(40),
					EducationHub:    boolptr(true),
				},
				Reasoning: "Decentralization that is actually planned starts practicing now: a stronger direct slice plus an education hub to grow voters.",
			},
		},
		SelfAssessment: []AssessmentQuestion{
			{
				ID:     "runway",
				Prompt: "How much runway does the org have?",
				Options: []AssessmentOption{
					{Value: "year_plus", Label: "A year or more", Risk: RiskLow, Feedback: "Enough room to let governance mistakes teach instead of kill."},
					{Value: "months", Label: "A few months", Risk: RiskMedium, Feedback: "Keep proposal overhead minimal; you cannot afford two-week votes."},
					{Value: "none", Label: "We are the runway", Risk: RiskHigh, Feedback: "Deploying governance before securing survival usually formalizes the wrong fights."},
				},
			},
			{
				ID:     "founder_alignment",
				Prompt: "Are the founders aligned on what the token is for?",
				Options: []AssessmentOption{
					{Value: "aligned", Label: "Yes, written down", Risk: RiskLow, Feedback: "Good. The blueprint will only encode what you already agree on."},
					{Value: "roughly", Label: "Roughly", Risk: RiskMedium, Feedback: "\"Roughly\" aligned founders disagree precisely when the token gains value."},
					{Value: "not_discussed", Label: "We have not discussed it", Risk: RiskHigh, Feedback: "Settle the token's purpose before giving it 80% of the vote."},
				},
			},
		},
		GrowthPath: []GrowthStage{
			{
				Name:        "Garage mode",
				Description: "Founders only; governance is a formality that keeps the treasury multi-sig honest.",
				Signals:     []string{"proposals pass unanimously", "votes close early"},
			},
			{
				Name:        "First outsiders",
				Description: "Core team members who were not founders hold real weight for the first time.",
				Signals:     []string{"first contested proposal", "advisor hats minted"},
			},
			{
				Name:        "Progressive decentralization",
				Description: "The direct-democracy slice grows on a schedule the org actually keeps.",
				Signals:     []string{"slider moved by proposal, not by founders", "founder hat supply frozen"},
			},
		},
		Pitfalls: []Pitfall{
			{
				Title:       "Decentralization theater",
				Description: "Token voting exists on paper while every real decision happens in the founders' chat.",
				Avoidance:   "Route at least spending above a threshold through real proposals from day one.",
			},
			{
				Title:       "Immutable too early",
				Description: "Freezing hats and supplies before the org shape settles locks mistakes in.",
				Avoidance:   "Keep hats mutable until a structure survives two quarters unchanged.",
			},
		},
		Concepts: []Concept{
			{Title: "Delegated band", Summary: "Slider values at or below 30: token weight and appointed roles dominate, polls stay open to all."},
			{Title: "Progressive decentralization", Summary: "Raising the democracy slice deliberately over time instead of promising it vaguely."},
		},
	}
}
