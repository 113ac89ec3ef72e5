package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/totara-dev/devsecrets/internal/ui"
)

// startSpinner creates and starts a spinner with the given message when
// not in verbose or debug mode. Returns the spinner and a function that
// should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup
// function runs them through ui.EnsureNewline before printing.
func startSpinner(message string) (*spinner.Spinner, func()) {
	log.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Continue without color if the terminal refuses it.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
	} else {
		log.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// printError reports a command failure on the spinner's final line.
func printError(s *spinner.Spinner, message string, err error) {
	log.Errorf("%s: %v", message, err)
	s.FinalMSG = ui.Error.Sprint("✗") + " " + message + "\n" +
		"  " + ui.Highlight.Sprint(err.Error())
}
