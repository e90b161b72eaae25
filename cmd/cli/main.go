package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"statwizard/adapters/profileconfig"
	"statwizard/app"
	"statwizard/domain/wizard"
	"statwizard/internal/logging"
	"statwizard/internal/session"
	"statwizard/profiles"
)

var (
	profileID   string
	profilesDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statwizard-cli",
		Short: "Inspect and exercise the test-selector decision tree from the command line",
	}
	rootCmd.PersistentFlags().StringVar(&profileID, "profile", "", "profile id (default profile when empty)")
	rootCmd.PersistentFlags().StringVar(&profilesDir, "profiles-dir", "", "load profiles from a directory instead of the embedded set")

	rootCmd.AddCommand(
		newDescribeCmd(),
		newResolveCmd(),
		newCheckCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService(logger *logging.Logger) (*app.SelectorService, error) {
	var (
		registry *profileconfig.Registry
		err      error
	)
	if profilesDir != "" {
		registry, err = profileconfig.LoadDir(profilesDir, "full", logger)
	} else {
		registry, err = profileconfig.LoadFS(profiles.FS, "full", logger)
	}
	if err != nil {
		return nil, err
	}
	return app.NewSelectorService(registry, session.NewSession(), logger), nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print a profile's question catalog, rules and hypothesis templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(logging.NewLogger(logging.LogLevelWarn))
			if err != nil {
				return err
			}
			desc, err := svc.Describe(profileID)
			if err != nil {
				return err
			}
			return printJSON(desc)
		},
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [question=value...]",
		Short: "Resolve an answer set to a test recommendation",
		Long: `Resolve an answer set to a test recommendation.

Example: statwizard-cli resolve scope=one_variable one_data_type=quantitative one_quant_normality=ok`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers := wizard.AnswerSet{}
			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid answer %q (use question=value)", arg)
				}
				answers[key] = value
			}

			svc, err := newService(logging.NewLogger(logging.LogLevelWarn))
			if err != nil {
				return err
			}
			resp, err := svc.Resolve(profileID, answers)
			if err != nil {
				return err
			}

			switch resp.Status {
			case app.StatusMissingAnswers:
				return printJSON(map[string]interface{}{
					"resolved":          false,
					"missing_questions": resp.MissingQuestions,
					"active_questions":  resp.ActiveQuestions,
				})
			case app.StatusNoRuleMatched:
				return printJSON(map[string]interface{}{
					"resolved": false,
					"answers":  resp.Answers,
					"note":     "no rule matched; the rule set has a gap",
				})
			default:
				return printJSON(map[string]interface{}{
					"resolved": true,
					"result":   resp.Result,
				})
			}
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the profile documents and report template gaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The loader already runs full validation and warns about
			// hypothesis templates referenced but not defined.
			svc, err := newService(logging.NewDefaultLogger())
			if err != nil {
				return err
			}
			h := svc.HealthCheck()
			fmt.Printf("OK: %d profile(s) loaded: %s\n", len(h.Profiles), strings.Join(h.Profiles, ", "))
			return nil
		},
	}
}
