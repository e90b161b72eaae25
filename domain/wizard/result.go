package wizard

// BuildResult expands a matched rule into the final recommendation payload.
// The rule's result descriptor is copied, never aliased, so repeated builds
// cannot leak mutations back into the shared profile. A hypothesis template
// id that is absent from the table resolves to an empty template; the loader
// already warned about such references at startup.
func BuildResult(p *Profile, rule *Rule) ResultPayload {
	payload := ResultPayload{
		ResultTemplate: rule.Result.clone(),
		RuleID:         rule.RuleID,
		AlphaDefault:   p.Alpha(),
	}
	if tpl, ok := p.Templates[rule.Result.HypothesisTemplate]; ok {
		payload.Hypotheses = tpl.clone()
	}
	return payload
}
