package main

import (
	"fmt"

	"github.com/aretw0/luxmeme/internal/cli"
	"github.com/spf13/cobra"
)

var (
	debug   bool
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "luxmeme",
	Short: "Build lux_motifs.meme from the built-in lux-box table",
	Long: `luxmeme writes every lux-box sequence of its built-in table as a one-hot
MEME motif into $LUX_BASE_DIR/lux_motifs.meme, creating the directory if needed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cli.Build(cli.BuildOptions{
			EnvFile: envFile,
			Debug:   debug,
			Stdout:  cmd.OutOrStdout(),
		})
		return err
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "ERROR: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load LUX_BASE_DIR from a dotenv file (environment takes precedence)")
}
