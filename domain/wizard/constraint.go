package wizard

// Matches reports whether the answer set satisfies every entry of the
// constraint. An answer key missing from the set fails the constraint; an
// empty constraint is satisfied by any answer set. The check is a pure
// conjunction, so evaluation order is not observable.
func (c Constraint) Matches(answers AnswerSet) bool {
	for key, expected := range c {
		value, ok := answers[key]
		if !ok {
			return false
		}
		if !expected.Accepts(value) {
			return false
		}
	}
	return true
}
