package app

import (
	"errors"
	"reflect"
	"testing"

	"statwizard/adapters/profileconfig"
	"statwizard/domain/core"
	"statwizard/domain/wizard"
	"statwizard/internal/logging"
	"statwizard/internal/session"
	"statwizard/profiles"
)

func newTestService(t *testing.T) (*SelectorService, *session.Session) {
	t.Helper()
	reg, err := profileconfig.LoadFS(profiles.FS, "full", nil)
	if err != nil {
		t.Fatalf("loading embedded profiles: %v", err)
	}
	sess := session.NewSession()
	svc := NewSelectorService(reg, sess, logging.NewLogger(logging.LogLevelError))
	return svc, sess
}

func TestDescribeProfiles(t *testing.T) {
	svc, _ := newTestService(t)

	desc, err := svc.Describe("")
	if err != nil {
		t.Fatalf("Describe default: %v", err)
	}
	if desc.ProfileID != "full" || desc.Version != "1.0" {
		t.Errorf("default describe = %q/%q", desc.ProfileID, desc.Version)
	}

	desc, err = svc.Describe("basic")
	if err != nil {
		t.Fatalf("Describe basic: %v", err)
	}
	if len(desc.Tree.Questions) != 3 {
		t.Errorf("basic profile has %d questions, want 3", len(desc.Tree.Questions))
	}

	_, err = svc.Describe("ghost")
	if !errors.Is(err, core.ErrUnknownProfile) {
		t.Errorf("expected unknown profile error, got %v", err)
	}
}

func TestResolveSuccessStoresAnswers(t *testing.T) {
	svc, sess := newTestService(t)
	answers := wizard.AnswerSet{
		"scope":               "one_variable",
		"one_data_type":       "quantitative",
		"one_quant_normality": "ok",
	}

	resp, err := svc.Resolve("", answers)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resp.Status != StatusResolved {
		t.Fatalf("status = %v, want StatusResolved", resp.Status)
	}
	if resp.Result.RuleID != "one_sample_t" {
		t.Errorf("rule = %q, want one_sample_t", resp.Result.RuleID)
	}
	if resp.Result.TestPrimary != "One-sample t-test" {
		t.Errorf("test_primary = %q", resp.Result.TestPrimary)
	}
	if resp.Result.AlphaDefault != 0.05 {
		t.Errorf("alpha_default = %v", resp.Result.AlphaDefault)
	}
	if !reflect.DeepEqual(sess.Answers(), answers) {
		t.Error("validated answers should be stored in the session")
	}
}

func TestResolveFallsBackToSession(t *testing.T) {
	svc, sess := newTestService(t)
	sess.Replace(wizard.AnswerSet{
		"scope":           "one_variable",
		"one_data_type":   "categorical_proportion",
		"one_prop_approx": "violated",
	})

	resp, err := svc.Resolve("", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resp.Status != StatusResolved || resp.Result.RuleID != "exact_binomial" {
		t.Errorf("resolved %+v, want exact_binomial", resp)
	}
}

func TestResolveMissingAnswers(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Resolve("", wizard.AnswerSet{"scope": "one_variable"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resp.Status != StatusMissingAnswers {
		t.Fatalf("status = %v, want StatusMissingAnswers", resp.Status)
	}
	if !reflect.DeepEqual(resp.MissingQuestions, []string{"one_data_type"}) {
		t.Errorf("missing = %v, want [one_data_type]", resp.MissingQuestions)
	}
	if !reflect.DeepEqual(resp.ActiveQuestions, []string{"scope", "one_data_type"}) {
		t.Errorf("active = %v", resp.ActiveQuestions)
	}
}

func TestResolveValidationErrors(t *testing.T) {
	svc, sess := newTestService(t)

	_, err := svc.Resolve("", wizard.AnswerSet{
		"scope":         "one_variable",
		"one_data_type": "not_a_real_option",
	})
	if !errors.Is(err, core.ErrInvalidOption) {
		t.Errorf("expected invalid option error, got %v", err)
	}
	if len(sess.Answers()) != 0 {
		t.Error("invalid answers must not be stored in the session")
	}

	_, err = svc.Resolve("", wizard.AnswerSet{"bogus_a": "x", "bogus_b": "y"})
	var unknown *core.UnknownQuestionsError
	if !errors.As(err, &unknown) || len(unknown.QuestionIDs) != 2 {
		t.Errorf("expected both unknown ids reported, got %v", err)
	}

	_, err = svc.Resolve("ghost", nil)
	if !errors.Is(err, core.ErrUnknownProfile) {
		t.Errorf("expected unknown profile error, got %v", err)
	}
}

func TestResolveDeterministic(t *testing.T) {
	svc, _ := newTestService(t)
	answers := wizard.AnswerSet{
		"scope":                  "two_variables",
		"two_data_pattern":       "nominal_continuous",
		"two_nomcont_groups":     "two",
		"two_nomcont_dependency": "independent",
		"two_nomcont_normality":  "ok",
		"two_nomcont_variance":   "violated",
	}
	for i := 0; i < 10; i++ {
		resp, err := svc.Resolve("full", answers)
		if err != nil || resp.Status != StatusResolved || resp.Result.RuleID != "welch_t" {
			t.Fatalf("iteration %d: resp=%+v err=%v, want welch_t", i, resp, err)
		}
	}
}

func TestResolveMergedBuildsOnSession(t *testing.T) {
	svc, sess := newTestService(t)
	sess.Replace(wizard.AnswerSet{
		"scope":         "one_variable",
		"one_data_type": "quantitative",
	})

	resp, err := svc.ResolveMerged("", wizard.AnswerSet{"one_quant_normality": "ok"})
	if err != nil {
		t.Fatalf("ResolveMerged: %v", err)
	}
	if resp.Status != StatusResolved || resp.Result.RuleID != "one_sample_t" {
		t.Fatalf("got %+v, want one_sample_t", resp)
	}

	// The stored session now carries the combined set.
	if len(sess.Answers()) != 3 {
		t.Errorf("session answers = %v, want the merged set", sess.Answers())
	}
}

func TestResetClearsSession(t *testing.T) {
	svc, sess := newTestService(t)
	sess.Replace(wizard.AnswerSet{"scope": "one_variable"})

	svc.Reset()
	if len(sess.Answers()) != 0 {
		t.Error("Reset should empty the session answers")
	}
}

func TestHealthCheck(t *testing.T) {
	svc, _ := newTestService(t)
	h := svc.HealthCheck()
	if h.Status != "ok" {
		t.Errorf("status = %q, want ok", h.Status)
	}
	if !reflect.DeepEqual(h.Profiles, []string{"basic", "full"}) {
		t.Errorf("profiles = %v", h.Profiles)
	}
}
