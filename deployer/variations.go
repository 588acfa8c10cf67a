package deployer

////////////////////////////////////////////////////////////////////////////////
// Variation matcher
////////////////////////////////////////////////////////////////////////////////

// disqualified marks a variation with a present-but-violated condition; it
// can never win, not even against a zero score.
const disqualified = -1

// ScoreVariation counts satisfied match conditions. An answered question
// whose value is accepted scores +1; a missing answer contributes nothing;
// an answered question whose value is NOT accepted disqualifies the
// variation outright.
func ScoreVariation(v Variation, answers map[string]string) int {
	score := 0
	for questionID, accepted := range v.MatchConditions {
		answer, ok := answers[questionID]
		if !ok {
			continue
		}
		hit := false
		for _, val := range accepted {
			if val == answer {
				hit = true
				break
			}
		}
		if !hit {
			return disqualified
		}
		score++
	}
	return score
}

// MatchVariation selects the best variation for the answer map: highest
// score wins, declaration order breaks ties. When nothing scores above zero
// the "default" variation (no conditions) wins; a template without one falls
// back to the first variation, or nil for an empty list.
func MatchVariation(t *Template, answers map[string]string) *Variation {
	if t == nil || len(t.Variations) == 0 {
		return nil
	}

	best := -1
	bestScore := 0
	for i, v := range t.Variations {
		s := ScoreVariation(v, answers)
		if s > bestScore {
			best = i
			bestScore = s
		}
	}
	if best >= 0 {
		return &t.Variations[best]
	}
	for i, v := range t.Variations {
		if v.ID == "default" {
			return &t.Variations[i]
		}
	}
	return &t.Variations[0]
}

// ApplyVariation overlays the variation's settings patch onto the state's
// voting configuration and feature flags, then regenerates the class list
// from the resulting democracy weight through the philosophy mapper. Roles
// and permissions are untouched; quorums change only when the patch names them.
func ApplyVariation(s State, v *Variation) State {
	if v == nil {
		return s
	}
	out := cloneState(s)
	out.Journey.MatchedVariation = v.ID

	voting := out.Voting
	if v.Settings.DemocracyWeight != nil {
		voting.DemocracyWeight = clampInt(*v.Settings.DemocracyWeight, 0, 100)
		voting.ParticipationWeight = 100 - voting.DemocracyWeight
	}
	if v.Settings.ParticipationWeight != nil {
		voting.ParticipationWeight = clampInt(*v.Settings.ParticipationWeight, 0, 100)
		voting.DemocracyWeight = 100 - voting.ParticipationWeight
	}

	// regenerate mode and class list from the merged democracy weight; the
	// quorums keep their prior values unless the patch names them
	regen := SliderToVoting(voting.DemocracyWeight)
	voting.Mode = regen.Mode
	voting.Classes = regen.Classes

	if v.Settings.HybridQuorum != nil {
		voting.HybridQuorum = clampInt(*v.Settings.HybridQuorum, 1, 100)
	}
	if v.Settings.DDQuorum != nil {
		voting.DDQuorum = clampInt(*v.Settings.DDQuorum, 1, 100)
	}
	if v.Settings.VotingMode != nil {
		voting.Mode = *v.Settings.VotingMode
	}
	if v.Settings.Quadratic != nil {
		voting.Quadratic = *v.Settings.Quadratic
		for i := range voting.Classes {
			voting.Classes[i].Quadratic = *v.Settings.Quadratic
		}
	}
	out.Voting = voting

	if v.Settings.EducationHub != nil {
		out.Features.EducationHub = *v.Settings.EducationHub
	}
	if v.Settings.ElectionHub != nil {
		out.Features.ElectionHub = *v.Settings.ElectionHub
	}
	return out
}

// AssessmentNote is one surfaced self-assessment warning.
type AssessmentNote struct {
	QuestionID string    `json:"questionId"`
	Prompt     string    `json:"prompt"`
	Answer     string    `json:"answer"`
	Risk       RiskLevel `json:"riskLevel"`
	Feedback   string    `json:"feedback"`
}

// AssessmentFeedback reports the risk notes for the current self-assessment
// answers, in question order. Purely informational; nothing here gates the
// wizard.
func AssessmentFeedback(t *Template, answers map[string]string) []AssessmentNote {
	notes := []AssessmentNote{}
	if t == nil {
		return notes
	}
	for _, q := range t.SelfAssessment {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		for _, opt := range q.Options {
			if opt.Value == answer {
				notes = append(notes, AssessmentNote{
					QuestionID: q.ID,
					Prompt:     q.Prompt,
					Answer:     answer,
					Risk:       opt.Risk,
					Feedback:   opt.Feedback,
				})
				break
			}
		}
	}
	return notes
}
