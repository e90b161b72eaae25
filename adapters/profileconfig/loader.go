// Package profileconfig loads and validates the declarative decision-tree
// documents. Loading happens once at startup; a malformed document aborts
// startup rather than degrading silently.
package profileconfig

import (
	"gopkg.in/yaml.v3"

	"statwizard/domain/wizard"
	"statwizard/internal/errors"
	"statwizard/internal/logging"
)

// ParseProfile parses one YAML profile document and validates it. The
// returned profile has its lookup indexes built and is ready for request
// handling.
func ParseProfile(data []byte, log *logging.Logger) (*wizard.Profile, error) {
	p := &wizard.Profile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, errors.Wrap(err, "failed to parse profile document")
	}

	if err := validateProfile(p); err != nil {
		return nil, err
	}

	p.Reindex()
	warnTemplateGaps(p, log)
	return p, nil
}

func validateProfile(p *wizard.Profile) error {
	if p.ID == "" {
		return errors.ConfigInvalid("profile document is missing an id")
	}
	if len(p.Questions) == 0 {
		return errors.ConfigInvalidf("profile %q declares no questions", p.ID)
	}

	questionIDs := make(map[string]struct{}, len(p.Questions))
	for _, q := range p.Questions {
		if q.ID == "" {
			return errors.ConfigInvalidf("profile %q: question with empty id", p.ID)
		}
		if _, dup := questionIDs[q.ID]; dup {
			return errors.ConfigInvalidf("profile %q: duplicate question id %q", p.ID, q.ID)
		}
		questionIDs[q.ID] = struct{}{}

		if len(q.Options) == 0 {
			return errors.ConfigInvalidf("profile %q: question %q has no options", p.ID, q.ID)
		}
		optionValues := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			if opt.Value == "" {
				return errors.ConfigInvalidf("profile %q: question %q has an option with empty value", p.ID, q.ID)
			}
			if _, dup := optionValues[opt.Value]; dup {
				return errors.ConfigInvalidf("profile %q: question %q repeats option value %q", p.ID, q.ID, opt.Value)
			}
			optionValues[opt.Value] = struct{}{}
		}
	}

	// When clauses may only reference questions declared earlier; the
	// no-cycle invariant holds by construction of the document.
	seen := make(map[string]struct{}, len(p.Questions))
	for _, q := range p.Questions {
		for ref := range q.When {
			if _, ok := seen[ref]; !ok {
				if _, defined := questionIDs[ref]; !defined {
					return errors.ConfigInvalidf("profile %q: question %q activation references undefined question %q", p.ID, q.ID, ref)
				}
				return errors.ConfigInvalidf("profile %q: question %q activation references %q, which is declared later", p.ID, q.ID, ref)
			}
		}
		seen[q.ID] = struct{}{}
	}

	if len(p.Rules) == 0 {
		return errors.ConfigInvalidf("profile %q declares no rules", p.ID)
	}
	ruleIDs := make(map[string]struct{}, len(p.Rules))
	for _, r := range p.Rules {
		if r.RuleID == "" {
			return errors.ConfigInvalidf("profile %q: rule with empty rule_id", p.ID)
		}
		if _, dup := ruleIDs[r.RuleID]; dup {
			return errors.ConfigInvalidf("profile %q: duplicate rule_id %q", p.ID, r.RuleID)
		}
		ruleIDs[r.RuleID] = struct{}{}

		// A rule must carry a conditions key; an explicitly empty map is a
		// legitimate catch-all, a missing key is an authoring mistake.
		if r.Conditions == nil {
			return errors.ConfigInvalidf("profile %q: rule %q has no conditions", p.ID, r.RuleID)
		}
		for ref := range r.Conditions {
			if _, defined := questionIDs[ref]; !defined {
				return errors.ConfigInvalidf("profile %q: rule %q conditions reference undefined question %q", p.ID, r.RuleID, ref)
			}
		}
		if r.Result.TestPrimary == "" {
			return errors.ConfigInvalidf("profile %q: rule %q has no result", p.ID, r.RuleID)
		}
	}

	if p.DefaultAlpha < 0 || p.DefaultAlpha > 1 {
		return errors.ConfigInvalidf("profile %q: default_alpha %v is outside (0, 1]", p.ID, p.DefaultAlpha)
	}
	return nil
}

// warnTemplateGaps flags hypothesis template ids referenced by rules but
// absent from the table. The reference resolves to an empty template at
// build time, so this stays a warning for backward compatibility; it almost
// always means a typo in the document.
func warnTemplateGaps(p *wizard.Profile, log *logging.Logger) {
	if log == nil {
		return
	}
	for _, r := range p.Rules {
		tid := r.Result.HypothesisTemplate
		if tid == "" {
			continue
		}
		if _, ok := p.Templates[tid]; !ok {
			log.Warn("profile %q: rule %q references hypothesis template %q which is not defined; it will resolve to an empty template",
				p.ID, r.RuleID, tid)
		}
	}
}
