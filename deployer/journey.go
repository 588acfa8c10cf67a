package deployer

////////////////////////////////////////////////////////////////////////////////
// Journey runner: non-interactive walk through the discovery questions
////////////////////////////////////////////////////////////////////////////////

// RunJourney applies discovery answers in question order through the reducer
// (rematching after each, as the reducer guarantees) and finishes by applying
// the matched variation's settings overlay. Answers for questions the active
// template does not ask are ignored.
func RunJourney(s State, answers map[string]string) State {
	tpl := ActiveTemplate(s)
	if tpl == nil {
		return s
	}
	out := s
	for _, q := range tpl.Questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		out = Reduce(out, SetDiscoveryAnswer{QuestionID: q.ID, Value: value})
		out = Reduce(out, NextDiscoveryQuestion{})
	}
	matched := MatchVariation(tpl, out.Journey.DiscoveryAnswers)
	return ApplyVariation(out, matched)
}
