// Package wizard implements the decision core of the test-selector:
// conditional question activation, answer validation, ordered rule matching
// and result assembly. Everything in this package is a pure function over an
// immutable Profile and a caller-supplied answer set.
package wizard

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// AnswerSet maps question ids to the selected option value.
type AnswerSet map[string]string

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	if a == nil {
		return nil
	}
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Expectation is one side of a constraint entry: either a single expected
// value or a one-of list of acceptable values. The closed two-case variant
// keeps the matcher exhaustively testable.
type Expectation struct {
	Value string
	OneOf []string
}

// Accepts reports whether the answer value satisfies the expectation.
func (e Expectation) Accepts(v string) bool {
	if e.OneOf != nil {
		return slices.Contains(e.OneOf, v)
	}
	return e.Value == v
}

// UnmarshalYAML accepts either a scalar ("value") or a sequence
// (["a", "b"]) in the configuration document.
func (e *Expectation) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Value)
	case yaml.SequenceNode:
		return node.Decode(&e.OneOf)
	default:
		return fmt.Errorf("constraint value must be a scalar or a sequence (line %d)", node.Line)
	}
}

// MarshalJSON mirrors the document form: a bare string or an array.
func (e Expectation) MarshalJSON() ([]byte, error) {
	if e.OneOf != nil {
		return json.Marshal(e.OneOf)
	}
	return json.Marshal(e.Value)
}

// Constraint is a conjunction of per-question expectations. A nil or empty
// constraint is vacuously satisfied.
type Constraint map[string]Expectation

// Option is one selectable answer for a question.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Question is a single step of the questionnaire. When is the activation
// condition; a question without one is always active. When may only
// reference questions declared earlier in the profile.
type Question struct {
	ID      string     `yaml:"id" json:"id"`
	Prompt  string     `yaml:"prompt" json:"prompt"`
	Options []Option   `yaml:"options" json:"options"`
	When    Constraint `yaml:"when,omitempty" json:"when,omitempty"`
}

// TestAlternative names a fallback test for a condition the primary test
// does not cover.
type TestAlternative struct {
	Condition string `yaml:"condition" json:"condition"`
	Test      string `yaml:"test" json:"test"`
}

// ResultTemplate is the descriptive payload attached to a rule. The
// HypothesisTemplate field references an entry in the profile's template
// table by id.
type ResultTemplate struct {
	TestPrimary        string            `yaml:"test_primary" json:"test_primary"`
	TestAlternatives   []TestAlternative `yaml:"test_alternatives,omitempty" json:"test_alternatives,omitempty"`
	Example            string            `yaml:"example,omitempty" json:"example,omitempty"`
	HypothesisTemplate string            `yaml:"hypothesis_template,omitempty" json:"hypothesis_template,omitempty"`
}

func (r ResultTemplate) clone() ResultTemplate {
	out := r
	out.TestAlternatives = slices.Clone(r.TestAlternatives)
	return out
}

// Rule maps a condition set onto a result. Rules live in a slice because
// declaration order is the precedence: the first satisfied rule wins.
type Rule struct {
	RuleID     string         `yaml:"rule_id" json:"rule_id"`
	Conditions Constraint     `yaml:"conditions" json:"conditions"`
	Result     ResultTemplate `yaml:"result" json:"result"`
}

// HypothesisVariant is one null/alternative statement pair. Tail is one of
// two_sided, left, right or global.
type HypothesisVariant struct {
	Tail string `yaml:"tail" json:"tail"`
	H0   string `yaml:"h0" json:"h0"`
	Ha   string `yaml:"ha" json:"ha"`
}

// HypothesisTemplate is a named, reusable set of hypothesis statements.
type HypothesisTemplate struct {
	Variants []HypothesisVariant `yaml:"variants" json:"variants"`
}

func (t HypothesisTemplate) clone() HypothesisTemplate {
	return HypothesisTemplate{Variants: slices.Clone(t.Variants)}
}

// ResultPayload is a fully built recommendation: the rule's result descriptor
// with the hypothesis template resolved and the rule id plus default
// significance level attached.
type ResultPayload struct {
	ResultTemplate
	Hypotheses   HypothesisTemplate `json:"hypotheses"`
	RuleID       string             `json:"rule_id"`
	AlphaDefault float64            `json:"alpha_default"`
}

// DefaultAlpha is used when a profile document does not set default_alpha.
const DefaultAlpha = 0.05

// Profile is one complete, independently validated configuration: question
// catalog, ordered rules and the hypothesis template table. It is loaded once
// at startup and read-only afterwards.
type Profile struct {
	ID           string                        `yaml:"id" json:"-"`
	Version      string                        `yaml:"version" json:"version"`
	DefaultAlpha float64                       `yaml:"default_alpha" json:"default_alpha"`
	Questions    []Question                    `yaml:"questions" json:"questions"`
	Rules        []Rule                        `yaml:"rules" json:"rules"`
	Templates    map[string]HypothesisTemplate `yaml:"hypothesis_templates" json:"hypothesis_templates"`

	questionByID map[string]*Question
	validOptions map[string]map[string]struct{}
}

// Reindex precomputes the question and option lookups used during
// validation. The loader calls it once after a successful parse; the lookups
// are never mutated afterwards.
func (p *Profile) Reindex() {
	p.questionByID = make(map[string]*Question, len(p.Questions))
	p.validOptions = make(map[string]map[string]struct{}, len(p.Questions))
	for i := range p.Questions {
		q := &p.Questions[i]
		p.questionByID[q.ID] = q
		opts := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			opts[opt.Value] = struct{}{}
		}
		p.validOptions[q.ID] = opts
	}
}

// Question returns the question with the given id, or nil.
func (p *Profile) Question(id string) *Question {
	return p.questionByID[id]
}

// HasOption reports whether value is a declared option of question id.
func (p *Profile) HasOption(id, value string) bool {
	opts, ok := p.validOptions[id]
	if !ok {
		return false
	}
	_, ok = opts[value]
	return ok
}

// Alpha returns the profile's default significance level.
func (p *Profile) Alpha() float64 {
	if p.DefaultAlpha == 0 {
		return DefaultAlpha
	}
	return p.DefaultAlpha
}
