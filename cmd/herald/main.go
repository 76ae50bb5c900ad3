package main

import (
	"fmt"
	"os"

	"github.com/halverde/herald"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "dev"

var (
	flagVerbose     bool
	flagQuiet       bool
	flagNarrate     bool
	flagMute        bool
	flagLogfile     string
	flagColorscheme string

	session *herald.Informer

	rootCmd = &cobra.Command{
		Use:   "herald",
		Short: "Herald - a demonstration of the herald messaging library.",
		Long: `Herald exercises the herald library from the command line: it composes
messages through every informant kind, shows culprits, codicils, templates,
and progress bars, and routes everything through a real session.

Usage:
  herald <command> [flags]

Available Commands:
  demo       Run the full messaging demonstration
  version    Print the herald version

Run 'herald help <command>' for more details on a specific command.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			session = herald.New(herald.Config{
				Mute:        flagMute,
				Quiet:       flagQuiet,
				Verbose:     flagVerbose,
				Narrate:     flagNarrate,
				Colorscheme: herald.Scheme(flagColorscheme),
				LogfilePath: flagLogfile,
				Version:     version,
			})
			cmd.Flags().Visit(func(f *pflag.Flag) {
				herald.Comment("flag:", f.Name, "=", f.Value.String())
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			session.Disconnect()
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Welcome to Herald! Run 'herald --help' to see available commands.")
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the herald version",
		Run: func(cmd *cobra.Command, args []string) {
			herald.Output("herald", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "show comments, which are normally only logged")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress normal output")
	rootCmd.PersistentFlags().BoolVar(&flagNarrate, "narrate", false, "show narration, which is normally only logged")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "suppress all output")
	rootCmd.PersistentFlags().StringVar(&flagLogfile, "logfile", "", "write a transcript to this file")
	rootCmd.PersistentFlags().StringVar(&flagColorscheme, "colorscheme", "dark", "colorscheme: none, light, or dark")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
