package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/preflop-trainer/domain/drill"
)

const (
	answerRaise = "Raise"
	answerFold  = "Fold"
	answerQuit  = "Quit"
)

var drillLength int

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Quiz yourself on random hands",
	RunE:  runDrill,
}

func init() {
	drillCmd.Flags().IntVarP(&drillLength, "length", "n", 0, "number of questions (default TRAINER_DRILL_LENGTH)")
}

func runDrill(cmd *cobra.Command, args []string) error {
	length := drillLength
	if length == 0 {
		var err error
		length, err = chooseLength(trainer.DrillLength())
		if err != nil {
			return err
		}
	}
	if err := trainer.SetDrillLength(length); err != nil {
		return err
	}
	if err := trainer.StartDrill(); err != nil {
		return err
	}
	defer trainer.ExitDrill()

	for {
		if quit := askAll(trainer.Drill()); quit {
			pterm.Info.Println("Drill abandoned.")
			return nil
		}
		if err := printSummary(trainer.Drill()); err != nil {
			return err
		}
		again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Try again?").WithDefaultValue(false).Show()
		if !again {
			return nil
		}
		if err := trainer.StartDrill(); err != nil {
			return err
		}
	}
}

// chooseLength offers the standard drill lengths, preselecting def when it is one of them.
func chooseLength(def int) (int, error) {
	options := make([]string, len(drill.Lengths))
	for i, n := range drill.Lengths {
		options[i] = strconv.Itoa(n)
	}
	selector := pterm.DefaultInteractiveSelect.WithDefaultText("How many hands?").WithOptions(options)
	if slices.Contains(drill.Lengths, def) {
		selector = selector.WithDefaultOption(strconv.Itoa(def))
	}
	choice, err := selector.Show()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(choice)
}

// askAll runs the questions of the current session. It reports whether the
// user quit before the end.
func askAll(e *drill.Engine) bool {
	for e.State() == drill.StateInProgress {
		h, ok := e.Current()
		if !ok {
			return true
		}
		pterm.Println(handPanel(h, e.Score().Total+1, e.Target()))

		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText(fmt.Sprintf("Raise or fold from %s?", h.Position)).
			WithOptions([]string{answerRaise, answerFold, answerQuit}).
			Show()
		if choice == answerQuit || choice == "" {
			return true
		}
		correct, _ := trainer.Answer(choice == answerRaise)
		if correct {
			pterm.Success.Println("Correct!")
		} else {
			pterm.Error.Printfln("Wrong: %s from %s is a %s.", h.Hand, h.Position, actionName(choice != answerRaise))
		}
	}
	return false
}

func printSummary(e *drill.Engine) error {
	panels := []pterm.Panel{{Data: scorePanel(e.Score())}}
	if err := pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Render(); err != nil {
		return err
	}
	mismatches := e.Mismatches()
	if len(mismatches) == 0 {
		pterm.Success.Println("No mistakes.")
		return nil
	}
	table, err := mismatchTable(mismatches)
	if err != nil {
		return err
	}
	pterm.DefaultSection.Println("Incorrect hands")
	pterm.Println(table)
	return nil
}
