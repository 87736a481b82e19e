package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/preflop-trainer/config"
	"github.com/luca-patrignani/preflop-trainer/domain/hands"
	"github.com/luca-patrignani/preflop-trainer/storage"
)

const (
	editToggle = "Toggle hands"
	editNext   = "Next position"
	editPrev   = "Previous position"
	editAll    = "Select all"
	editClear  = "Clear position"
	editDone   = "Done"
)

var editPosition string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the ranges interactively",
	RunE:  runEdit,
}

var showCmd = &cobra.Command{
	Use:   "show [position]",
	Short: "Print the ranges of one or every position",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

var resetAll, resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every range, or with --all every stored preset too",
	RunE:  runReset,
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Describe the TRAINER_* environment variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := config.Usage()
		if err != nil {
			return err
		}
		fmt.Println(u)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editPosition, "position", "p", "", "position to start from")
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "also delete presets and the active preset")
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "do not ask for confirmation")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if editPosition != "" {
		p, err := hands.ParsePosition(editPosition)
		if err != nil {
			return err
		}
		if err := trainer.SetPosition(p); err != nil {
			return err
		}
	}
	banner()
	options := []string{editToggle, editNext, editPrev, editAll, editClear, editDone}
	for {
		active := ""
		if p, ok := trainer.Presets().Active(); ok {
			active = p.Name
		}
		printEditorHeader(trainer.Ranges().Positions(), trainer.Position(), active)
		if err := printPosition(trainer.Ranges(), trainer.Position()); err != nil {
			return err
		}

		choice, err := pterm.DefaultInteractiveSelect.WithDefaultText("What next?").WithOptions(options).Show()
		if err != nil {
			return err
		}
		switch choice {
		case editToggle:
			input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Hands to toggle, e.g. AKs QQ T9o").Show()
			for _, h := range toggleAll(input) {
				pterm.Warning.Printfln("Unknown hand %q", h)
			}
		case editNext:
			trainer.NextPosition()
		case editPrev:
			trainer.PrevPosition()
		case editAll:
			trainer.SelectAll(true)
		case editClear:
			trainer.SelectAll(false)
		case editDone:
			return nil
		}
		pterm.Println()
	}
}

// toggleAll toggles every whitespace or comma separated hand of input in
// the current position and returns the ones it could not find.
func toggleAll(input string) []string {
	var rejected []string
	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	for _, h := range fields {
		if !trainer.ToggleHand(h) {
			rejected = append(rejected, h)
		}
	}
	return rejected
}

func runShow(cmd *cobra.Command, args []string) error {
	positions := trainer.Ranges().Positions()
	if len(args) == 1 {
		p, err := hands.ParsePosition(args[0])
		if err != nil {
			return err
		}
		positions = []hands.Position{p}
	}
	for _, p := range positions {
		if err := printPosition(trainer.Ranges(), p); err != nil {
			return err
		}
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	what := "every range"
	if resetAll {
		what = "every range and preset"
	}
	if !resetYes {
		ok, _ := pterm.DefaultInteractiveConfirm.WithDefaultText(fmt.Sprintf("Clear %s?", what)).Show()
		if !ok {
			pterm.Info.Println("Nothing changed.")
			return nil
		}
	}
	if resetAll {
		kv.Clear(storage.Namespace)
	} else if err := trainer.ResetRanges(); err != nil {
		return err
	}
	pterm.Success.Printfln("Cleared %s.", what)
	return nil
}
