package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/noct-ml/echo-forge/internal/inspect"
	"github.com/noct-ml/echo-forge/internal/logger"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Report the structure of a transcript export",
	Long: `Parse a transcript export and report what the converter will find:
role markers per speaker, literal code blocks, and element frequencies.
Useful before choosing conversion flags.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Bool("json", false, "output the report as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	report, err := inspect.Analyze(string(data))
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Print(report.String())
	return nil
}
