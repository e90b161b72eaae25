package wizard

// OutcomeKind distinguishes the three results of a resolution attempt.
// Missing answers and an unmatched rule set are expected outcomes, not
// errors: the first asks the caller for more input, the second points at a
// gap in the rule configuration.
type OutcomeKind int

const (
	OutcomeResolved OutcomeKind = iota
	OutcomeMissingAnswers
	OutcomeNoRuleMatched
)

// Outcome is the result of ResolveRule. Rule is set only for
// OutcomeResolved. MissingQuestions and ActiveQuestions are set for
// OutcomeMissingAnswers, both in declaration order.
type Outcome struct {
	Kind             OutcomeKind
	Rule             *Rule
	MissingQuestions []string
	ActiveQuestions  []string
}

// ResolveRule finds the first rule satisfied by the answers. Rule matching
// only happens once every active question has an answer; until then the
// outcome lists what is still missing. Answers to questions that are not
// currently active stay in the set and may participate in rule conditions.
func ResolveRule(p *Profile, answers AnswerSet) Outcome {
	active := ActiveQuestions(p, answers)

	var activeIDs, missing []string
	for _, q := range active {
		activeIDs = append(activeIDs, q.ID)
		if _, ok := answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return Outcome{
			Kind:             OutcomeMissingAnswers,
			MissingQuestions: missing,
			ActiveQuestions:  activeIDs,
		}
	}

	for i := range p.Rules {
		if p.Rules[i].Conditions.Matches(answers) {
			return Outcome{Kind: OutcomeResolved, Rule: &p.Rules[i]}
		}
	}
	return Outcome{Kind: OutcomeNoRuleMatched}
}
