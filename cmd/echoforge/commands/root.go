// Package commands implements the CLI commands for echoforge.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/noct-ml/echo-forge/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "echoforge",
	Short: "Forge chat-transcript exports into clean text or polished Markdown",
	Long: `EchoForge converts an exported chat transcript (saved HTML or plain
text) into clean plain text, JSONL, or a themed Markdown document.

Examples:
  # Plain-text conversion
  echoforge convert chat.html chat.txt

  # Split into speaker turns, one JSON object per line
  echoforge convert chat.html chat.jsonl --by-speaker --jsonl

  # Polished Markdown with a table of contents and dark theme
  echoforge convert chat.html chat.md --by-speaker --pretty-md \
      --toc-depth 3 --theme dark --user-label "James"

  # Look inside an export before converting it
  echoforge inspect chat.html`,
}

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.echoforge.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	versionCmd.Flags().Bool("json", false, "output version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".echoforge")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ECHOFORGE")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(version.Get())
		}
		fmt.Println(version.Full())
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
