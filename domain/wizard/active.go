package wizard

// IsActive reports whether the question is in play for the given answers. A
// question without a when clause is always active.
func (q *Question) IsActive(answers AnswerSet) bool {
	if len(q.When) == 0 {
		return true
	}
	return q.When.Matches(answers)
}

// ActiveQuestions returns, in declaration order, every question whose
// activation condition is satisfied by the current answers. Activation is a
// one-step evaluation over the answer snapshot and is recomputed from
// scratch on every call.
func ActiveQuestions(p *Profile, answers AnswerSet) []Question {
	var active []Question
	for _, q := range p.Questions {
		if q.IsActive(answers) {
			active = append(active, q)
		}
	}
	return active
}
