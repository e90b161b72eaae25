package wizard

import (
	"sort"

	"statwizard/domain/core"
)

// ValidateAnswers checks the answer set against the profile's question and
// option catalog. Unknown question ids are collected and reported together.
// Option values are checked for every answered question, active or not, so a
// stale answer to a currently inactive question still has to be well formed.
func ValidateAnswers(p *Profile, answers AnswerSet) error {
	var unknown []string
	for id := range answers {
		if p.Question(id) == nil {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &core.UnknownQuestionsError{QuestionIDs: unknown}
	}

	// Report invalid values in declaration order so the error is
	// deterministic for a given answer set.
	for _, q := range p.Questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if !p.HasOption(q.ID, value) {
			return &core.InvalidOptionError{QuestionID: q.ID, Value: value}
		}
	}
	return nil
}
