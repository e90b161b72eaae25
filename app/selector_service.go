package app

import (
	"statwizard/domain/wizard"
	"statwizard/internal/logging"
	"statwizard/ports"
)

// SelectorService ties the profile registry and the answer session to the
// resolver core. It is the operation boundary: client input errors come back
// as error values, while missing answers and an unmatched rule set are
// structured outcomes in the response.
type SelectorService struct {
	registry ports.ProfileRegistry
	session  ports.AnswerSession
	log      *logging.Logger
}

// NewSelectorService wires a service from its collaborators.
func NewSelectorService(registry ports.ProfileRegistry, session ports.AnswerSession, log *logging.Logger) *SelectorService {
	return &SelectorService{
		registry: registry,
		session:  session,
		log:      log,
	}
}

// TreeDescription is the full configuration document for one profile.
type TreeDescription struct {
	ProfileID string          `json:"profile"`
	Version   string          `json:"version"`
	Tree      *wizard.Profile `json:"tree"`
}

// Describe returns the configuration of the named profile (default profile
// for an empty id).
func (s *SelectorService) Describe(profileID string) (*TreeDescription, error) {
	p, err := s.registry.Profile(profileID)
	if err != nil {
		return nil, err
	}
	return &TreeDescription{
		ProfileID: p.ID,
		Version:   p.Version,
		Tree:      p,
	}, nil
}

// Reset clears the session answer set.
func (s *SelectorService) Reset() {
	s.session.Reset()
	s.log.Debug("session answers cleared")
}

// ResolveStatus is the outcome kind of a Resolve call.
type ResolveStatus int

const (
	StatusResolved ResolveStatus = iota
	StatusMissingAnswers
	StatusNoRuleMatched
)

// ResolveResponse carries one of three outcomes. Answers echoes the answer
// set the resolution ran against.
type ResolveResponse struct {
	Status           ResolveStatus
	Result           *wizard.ResultPayload
	Answers          wizard.AnswerSet
	MissingQuestions []string
	ActiveQuestions  []string
}

// Resolve validates the answers and runs rule resolution against the named
// profile. A nil answer set falls back to the session copy; a validated
// answer set becomes the new session copy. Validation failures and unknown
// profiles are returned as errors.
func (s *SelectorService) Resolve(profileID string, answers wizard.AnswerSet) (*ResolveResponse, error) {
	p, err := s.registry.Profile(profileID)
	if err != nil {
		return nil, err
	}

	if answers == nil {
		answers = s.session.Answers()
	}

	if err := wizard.ValidateAnswers(p, answers); err != nil {
		return nil, err
	}

	// Valid answers are remembered even when resolution is still
	// incomplete, so the next request can continue where this one stopped.
	s.session.Replace(answers)

	outcome := wizard.ResolveRule(p, answers)
	switch outcome.Kind {
	case wizard.OutcomeMissingAnswers:
		return &ResolveResponse{
			Status:           StatusMissingAnswers,
			Answers:          answers,
			MissingQuestions: outcome.MissingQuestions,
			ActiveQuestions:  outcome.ActiveQuestions,
		}, nil
	case wizard.OutcomeNoRuleMatched:
		s.log.Warn("no rule matched answers %v in profile %q; the rule set has a gap", answers, p.ID)
		return &ResolveResponse{
			Status:  StatusNoRuleMatched,
			Answers: answers,
		}, nil
	}

	result := wizard.BuildResult(p, outcome.Rule)
	s.log.Debug("resolved profile %q to rule %q", p.ID, outcome.Rule.RuleID)
	return &ResolveResponse{
		Status:  StatusResolved,
		Result:  &result,
		Answers: answers,
	}, nil
}

// ResolveMerged overlays the submitted answers onto the session copy and
// resolves the combined set, so an interactive client can send only the
// question it just answered. The combination is validated as a whole and
// only stored when valid, like any other resolve.
func (s *SelectorService) ResolveMerged(profileID string, submitted wizard.AnswerSet) (*ResolveResponse, error) {
	merged := s.session.Answers()
	for k, v := range submitted {
		merged[k] = v
	}
	return s.Resolve(profileID, merged)
}

// Health reports liveness plus the loaded profile ids.
type Health struct {
	Status   string   `json:"status"`
	Profiles []string `json:"profiles"`
}

// HealthCheck has no state dependency beyond the immutable registry.
func (s *SelectorService) HealthCheck() Health {
	return Health{
		Status:   "ok",
		Profiles: s.registry.IDs(),
	}
}
