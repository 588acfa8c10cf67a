package deployer

////////////////////////////////////////////////////////////////////////////////
// Template: community organization
////////////////////////////////////////////////////////////////////////////////

// communityOrgTemplate fits open-membership groups: low barrier to entry,
// stewards curate, contributors earn weight through participation.
func communityOrgTemplate() *Template {
	return &Template{
		ID:             "community-org",
		Name:           "Community Organization",
		Tagline:        "Open doors, earned influence",
		Description:    "An open community anyone can join. Influence follows contribution: stewards keep the lights on, contributors earn participation weight, supporters can always vote in polls.",
		PhilosophyHint: 50,
		Roles: []Role{
			{
				Name:    "Steward",
				CanVote: true,
				Vouching: VouchingPolicy{
					Enabled:              true,
					Quorum:               3,
					VoucherRole:          1,
					CombineWithHierarchy: true,
				},
				Defaults: MemberDefaults{Eligible: true, InStanding: true},
				Distribution: Distribution{
					MintToDeployer:      true,
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 7, Mutable: true},
			},
			{
				Name:      "Contributor",
				CanVote:   true,
				Vouching:  VouchingPolicy{Quorum: 1},
				Defaults:  MemberDefaults{Eligible: true, InStanding: true},
				AdminRole: intptr(0),
				Distribution: Distribution{
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 500, Mutable: true},
			},
			{
				Name:      "Supporter",
				CanVote:   true,
				Vouching:  VouchingPolicy{Quorum: 1},
				Defaults:  MemberDefaults{Eligible: true, InStanding: true},
				AdminRole: intptr(0),
				Distribution: Distribution{
					AdditionalAddresses: []string{},
					AdditionalUsernames: []string{},
				},
				Hat: HatConfig{MaxSupply: 10000, Mutable: true},
			},
		},
		Permissions: PermissionSets{
			QuickJoin:             []int{2},
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
			HybridQuorum:        50,
			DDQuorum:            50,
			DemocracyWeight:     50,
			ParticipationWeight: 50,
			Classes: []VotingClass{
				{Strategy: StrategyDirect, SlicePct: 50, Hats: []string{}},
				{Strategy: StrategyErcBalance, SlicePct: 50, Hats: []string{}},
			},
		},
		Features: Features{EducationHub: true, ElectionHub: true},
		Questions: []DiscoveryQuestion{
			{
				ID:     "openness",
				Prompt: "Who should be able to walk in the door?",
				Options: []QuestionOption{
					{Value: "anyone", Label: "Anyone, immediately", Impact: "Quick-join stays on for the supporter role."},
					{Value: "light_screen", Label: "Anyone, after a light screen", Impact: "Supporters join free, contributors get vouched."},
					{Value: "invite", Label: "Invitation only", Impact: "Every role goes through vouching or invitation."},
				},
			},
			{
				ID:     "activity_shape",
				Prompt: "What does the community mostly do together?",
				Options: []QuestionOption{
					{Value: "events", Label: "Events and meetups", Impact: "Election hub helps rotate organizers."},
					{Value: "content", Label: "Content and education", Impact: "Education hub becomes the center of gravity."},
					{Value: "funding", Label: "Pooling and granting funds", Impact: "Token approvals and proposal quality matter most."},
				},
			},
			{
				ID:     "moderation_load",
				Prompt: "How much moderation do you expect?",
				Options: []QuestionOption{
					{Value: "light", Label: "Barely any", Impact: "A thin steward layer is enough."},
					{Value: "heavy", Label: "Constant", Impact: "More stewards, and stewards need real authority."},
				},
			},
		},
		Variations: []Variation{
			{
				ID:              "default",
				Name:            "Balanced community",
				MatchConditions: map[string][]string{},
				Settings:        VariationSettings{},
				Reasoning:       "The stock community split: half the weight to headcount, half to demonstrated participation.",
			},
			{
				ID:   "open-doors",
				Name: "Wide-open community",
				MatchConditions: map[string][]string{
					"openness": {"anyone"},
				},
				Settings: VariationSettings{
					DemocracyWeight: intptr(40),
					DDQuorum:        intptr(30),
					ElectionHub:     boolptr(true),
				},
				Reasoning: "With zero join friction, raw headcount is easy to inflate; tilting toward participation weight keeps drive-by accounts from steering.",
			},
			{
				ID:   "grant-pool",
				Name: "Grant-making community",
				MatchConditions: map[string][]string{
					"activity_shape": {"funding"},
				},
				Settings: VariationSettings{
					DemocracyWeight: intptr(35),
					HybridQuorum:    intptr(50),
					Quadratic:       boolptr(true),
				},
				Reasoning: "Money decisions reward engaged voters over large ones; quadratic weighting blunts whales without silencing them.",
			},
			{
				ID:   "curated-collective",
				Name: "Curated collective",
				MatchConditions: map[string][]string{
					"openness":        {"invite"},
					"moderation_load": {"heavy"},
				},
				Settings: VariationSettings{
					DemocracyWeight: intptr(70),
					HybridQuorum:    intptr(60),
					DDQuorum:        intptr(60),
				},
				Reasoning: "A curated membership can carry stronger democracy: fewer, better-known voters make higher quorums realistic.",
			},
		},
		SelfAssessment: []AssessmentQuestion{
			{
				ID:     "founder_reliance",
				Prompt: "If the founding team disappeared tomorrow, what happens?",
				Options: []AssessmentOption{
					{Value: "continues", Label: "The community runs itself", Risk: RiskLow, Feedback: "Healthy. Keep documenting so it stays true."},
					{Value: "limps", Label: "It would limp along", Risk: RiskMedium, Feedback: "Start rotating steward duties before you need to."},
					{Value: "dies", Label: "It would dissolve", Risk: RiskHigh, Feedback: "A community that is actually one person's project should be honest about that before taking members' money."},
				},
			},
			{
				ID:     "conflict_history",
				Prompt: "Has this group been through a public conflict before?",
				Options: []AssessmentOption{
					{Value: "yes_resolved", Label: "Yes, and we resolved it", Risk: RiskLow, Feedback: "You already know your process works under load."},
					{Value: "yes_unresolved", Label: "Yes, it still stings", Risk: RiskHigh, Feedback: "Deploying governance on top of an open wound tends to formalize the split."},
					{Value: "no", Label: "Not yet", Risk: RiskMedium, Feedback: "The first conflict will test rules you have not used; keep them simple."},
				},
			},
		},
		GrowthPath: []GrowthStage{
			{
				Name:        "Gathering",
				Description: "A recurring group with informal norms and a couple of de-facto organizers.",
				Signals:     []string{"regular attendance", "organizers paying out of pocket"},
			},
			{
				Name:        "Structured community",
				Description: "Stewards elected, supporters flowing in through quick-join, first shared funds.",
				Signals:     []string{"first steward election", "treasury larger than one event's budget"},
			},
			{
				Name:        "Federation",
				Description: "Sub-groups with their own budgets under the community umbrella.",
				Signals:     []string{"working groups requesting standing budgets", "local chapters"},
			},
		},
		Pitfalls: []Pitfall{
			{
				Title:       "Ghost majority",
				Description: "Thousands of supporters who joined once and never vote drown the quorum math.",
				Avoidance:   "Size quorums against active voters, not total members, and prune or discount inactive hats.",
			},
			{
				Title:       "Steward burnout",
				Description: "A handful of stewards absorb all operational load until they quit at once.",
				Avoidance:   "Cap steward terms and make the election hub part of the routine, not an emergency tool.",
			},
		},
		Concepts: []Concept{
			{Title: "Quick join", Summary: "Roles in the quickJoin set can be claimed by anyone without endorsement."},
			{Title: "Quadratic voting", Summary: "Vote weight grows with the square root of tokens committed, flattening whale influence."},
		},
	}
}
