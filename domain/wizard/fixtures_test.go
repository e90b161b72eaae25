package wizard

// testProfile builds a small two-branch profile used across the package
// tests: a scope question, a conditional follow-up per branch and one rule
// per leaf, plus a deliberately overlapping catch-all rule to pin down
// first-match-wins ordering.
func testProfile() *Profile {
	p := &Profile{
		ID:           "test",
		Version:      "1.0",
		DefaultAlpha: 0.05,
		Questions: []Question{
			{
				ID:     "scope",
				Prompt: "How many variables?",
				Options: []Option{
					{Value: "one_variable", Label: "One variable"},
					{Value: "two_variables", Label: "Two variables"},
				},
			},
			{
				ID:     "one_data_type",
				Prompt: "What kind of data?",
				When:   Constraint{"scope": {Value: "one_variable"}},
				Options: []Option{
					{Value: "quantitative", Label: "Quantitative"},
					{Value: "categorical_proportion", Label: "Proportion"},
				},
			},
			{
				ID:     "one_quant_normality",
				Prompt: "Is the sample approximately normal?",
				When:   Constraint{"one_data_type": {Value: "quantitative"}},
				Options: []Option{
					{Value: "ok", Label: "Yes"},
					{Value: "violated", Label: "No"},
				},
			},
			{
				ID:     "two_data_pattern",
				Prompt: "What do the two variables look like?",
				When:   Constraint{"scope": {Value: "two_variables"}},
				Options: []Option{
					{Value: "two_continuous", Label: "Both continuous"},
					{Value: "two_nominal", Label: "Both nominal"},
				},
			},
		},
		Rules: []Rule{
			{
				RuleID: "one_sample_t",
				Conditions: Constraint{
					"scope":               {Value: "one_variable"},
					"one_data_type":       {Value: "quantitative"},
					"one_quant_normality": {Value: "ok"},
				},
				Result: ResultTemplate{
					TestPrimary:        "One-sample t-test",
					HypothesisTemplate: "mean_vs_reference",
					TestAlternatives: []TestAlternative{
						{Condition: "Normality violated", Test: "Wilcoxon signed-rank test"},
					},
				},
			},
			{
				RuleID: "one_sample_any",
				Conditions: Constraint{
					"scope":               {Value: "one_variable"},
					"one_data_type":       {Value: "quantitative"},
					"one_quant_normality": {OneOf: []string{"ok", "violated"}},
				},
				Result: ResultTemplate{
					TestPrimary:        "Wilcoxon signed-rank test",
					HypothesisTemplate: "median_vs_reference",
				},
			},
			{
				RuleID: "correlation",
				Conditions: Constraint{
					"two_data_pattern": {Value: "two_continuous"},
				},
				Result: ResultTemplate{
					TestPrimary:        "Pearson correlation",
					HypothesisTemplate: "missing_template",
				},
			},
		},
		Templates: map[string]HypothesisTemplate{
			"mean_vs_reference": {
				Variants: []HypothesisVariant{
					{Tail: "two_sided", H0: "mu = mu0", Ha: "mu != mu0"},
					{Tail: "left", H0: "mu >= mu0", Ha: "mu < mu0"},
				},
			},
			"median_vs_reference": {
				Variants: []HypothesisVariant{
					{Tail: "two_sided", H0: "theta = theta0", Ha: "theta != theta0"},
				},
			},
		},
	}
	p.Reindex()
	return p
}
