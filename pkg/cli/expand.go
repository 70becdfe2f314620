package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geturit/urit/pkg/uritemplate"
)

var (
	expandVarFlags []string
	expandVarsFile string
)

var expandCmd = &cobra.Command{
	Use:   "expand TEMPLATE",
	Short: "Expand a URI template against variable bindings",
	Long: `Expand compiles TEMPLATE and renders it against the given bindings.

Bindings come from --vars (a YAML or JSON file mapping names to scalars,
lists, or maps) and from repeated -v name=value flags, which bind scalars
and override the file. Undefined variables expand to nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().StringArrayVarP(&expandVarFlags, "var", "v", nil, "Scalar binding as name=value (repeatable)")
	expandCmd.Flags().StringVar(&expandVarsFile, "vars", "", "YAML or JSON file with variable bindings")
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	log := newLogger()

	vars := uritemplate.NewVariables()
	if expandVarsFile != "" {
		fileVars, err := loadVarsFile(expandVarsFile)
		if err != nil {
			return err
		}
		vars = fileVars
	}
	if err := applyVarFlags(vars, expandVarFlags); err != nil {
		return err
	}

	tmpl, err := uritemplate.Compile(args[0])
	if err != nil {
		return err
	}
	log.Debug("compiled template", "source", tmpl.Source(), "variables", tmpl.Varnames())

	uri, err := tmpl.Expand(vars)
	if err != nil {
		return err
	}

	if jsonOutput {
		out, err := json.Marshal(map[string]string{"uri": uri})
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), uri)
	return nil
}
