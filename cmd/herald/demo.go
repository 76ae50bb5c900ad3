package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/halverde/herald"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the full messaging demonstration",
	Long:  `Dispatches a sample message through every informant kind and finishes with a progress bar.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !flagQuiet && !flagMute {
			fmt.Println()
			banner := figure.NewColorFigure("Herald", "alligator2", "cyan", true)
			banner.Print()
			fmt.Println()
		}

		herald.Display("Starting the demonstration.")
		herald.Comment("Comments appear only with --verbose.")
		herald.Narrate("Narration appears only with --narrate.")
		herald.Log("Log messages appear only in the logfile.")

		herald.Display(
			herald.Template("Hello {name}, you have {count} new messages.", "Hello {name}."),
			herald.Fields{"name": "Ada", "count": 3},
		)

		restore := herald.SetCulprit("demo.conf")
		herald.Warn("unrecognized key.", herald.Culprit("demo.conf", 12),
			herald.WithCodicil("the key is ignored."))
		herald.Error("value out of range.")
		restore()

		sp, cleanup := startSpinner("Pretending to work...", flagVerbose)
		time.Sleep(1200 * time.Millisecond)
		sp.FinalMSG = "Work complete."
		cleanup()

		const steps = 25
		bar := herald.NewProgressBar(steps)
		for i := 1; i <= steps; i++ {
			time.Sleep(40 * time.Millisecond)
			if i == steps/2 {
				herald.Warn("halfway there.")
			}
			bar.Draw(float64(i))
		}
		bar.Done()

		if herald.ErrorsAccrued(false) > 0 {
			herald.Display("The demonstration accrued errors on purpose.")
		}
		herald.Display("Done.")
	},
}

// startSpinner runs a spinner while a slow step is in flight. The returned
// cleanup stops the spinner and prints the final message; in verbose mode
// the spinner never starts so log lines stay readable.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		herald.Comment("failed to set spinner color:", err)
	}

	if !verbose && !flagQuiet && !flagMute {
		s.Start()
	}

	cleanup := func() {
		if s.FinalMSG != "" && s.FinalMSG[len(s.FinalMSG)-1] != '\n' {
			s.FinalMSG += "\n"
		}
		if s.Active() {
			s.Stop()
		} else if s.FinalMSG != "" {
			herald.Display(s.FinalMSG, herald.End(""))
		}
	}
	return s, cleanup
}
