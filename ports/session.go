package ports

import "statwizard/domain/wizard"

// AnswerSession holds the in-progress answer set between requests for one
// interactive user. The resolver core never touches it; callers read the
// current answers out and pass them explicitly. Implementations must guard
// read-modify-write sequences if the host serves concurrent callers.
type AnswerSession interface {
	// Answers returns a copy of the current answer set.
	Answers() wizard.AnswerSet

	// Replace swaps the stored answer set for a copy of the given one.
	Replace(answers wizard.AnswerSet)

	// Merge overlays the given answers onto the stored set.
	Merge(answers wizard.AnswerSet)

	// Reset clears the stored answer set to empty.
	Reset()
}
