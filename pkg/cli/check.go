package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geturit/urit/pkg/uritemplate"
)

var checkCmd = &cobra.Command{
	Use:   "check TEMPLATE...",
	Short: "Validate URI templates without expanding them",
	Long: `Check compiles each TEMPLATE and reports the first syntax error.
The exit code is non-zero when any template is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkResult is the JSON shape for one checked template.
type checkResult struct {
	Template string `json:"template"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	var firstErr error
	results := make([]checkResult, 0, len(args))
	for _, src := range args {
		res := checkResult{Template: src, Valid: true}
		if _, err := uritemplate.Compile(src); err != nil {
			res.Valid = false
			res.Error = err.Error()
			if firstErr == nil {
				firstErr = err
			}
		}
		results = append(results, res)
	}

	if jsonOutput {
		out, err := json.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		for _, res := range results {
			if res.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", res.Template)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Template, res.Error)
			}
		}
	}
	return firstErr
}
