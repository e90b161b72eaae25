package wizard

import "testing"

func TestConstraintMatches(t *testing.T) {
	tests := []struct {
		name       string
		constraint Constraint
		answers    AnswerSet
		want       bool
	}{
		{"empty constraint, empty answers", Constraint{}, AnswerSet{}, true},
		{"nil constraint", nil, AnswerSet{"scope": "one_variable"}, true},
		{"empty constraint, any answers", Constraint{}, AnswerSet{"scope": "one_variable"}, true},
		{
			"scalar match",
			Constraint{"scope": {Value: "one_variable"}},
			AnswerSet{"scope": "one_variable"},
			true,
		},
		{
			"scalar mismatch",
			Constraint{"scope": {Value: "one_variable"}},
			AnswerSet{"scope": "two_variables"},
			false,
		},
		{
			"missing key fails",
			Constraint{"scope": {Value: "one_variable"}},
			AnswerSet{"other": "one_variable"},
			false,
		},
		{
			"one-of membership",
			Constraint{"normality": {OneOf: []string{"ok", "borderline"}}},
			AnswerSet{"normality": "borderline"},
			true,
		},
		{
			"one-of non-membership",
			Constraint{"normality": {OneOf: []string{"ok", "borderline"}}},
			AnswerSet{"normality": "violated"},
			false,
		},
		{
			"conjunction needs every key",
			Constraint{
				"scope":     {Value: "one_variable"},
				"data_type": {Value: "quantitative"},
			},
			AnswerSet{"scope": "one_variable"},
			false,
		},
		{
			"extra answers are ignored",
			Constraint{"scope": {Value: "one_variable"}},
			AnswerSet{"scope": "one_variable", "stale": "whatever"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.constraint.Matches(tt.answers); got != tt.want {
				t.Errorf("Matches(%v, %v) = %v, want %v", tt.answers, tt.constraint, got, tt.want)
			}
		})
	}
}

func TestExpectationAccepts(t *testing.T) {
	scalar := Expectation{Value: "ok"}
	if !scalar.Accepts("ok") || scalar.Accepts("violated") {
		t.Error("scalar expectation should accept exactly its value")
	}

	// An empty one-of list is a constraint nothing satisfies; it is still a
	// list, not a scalar.
	empty := Expectation{OneOf: []string{}}
	if empty.Accepts("") {
		t.Error("empty one-of list should accept nothing")
	}
}
