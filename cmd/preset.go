package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/preflop-trainer/domain/presets"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved presets",
	Long: `Save, load and share named snapshots of every position's range.

Subcommands:
  list    - List presets, the active one marked with *
  save    - Save the current ranges as a new preset
  load    - Replace the current ranges with a preset
  update  - Overwrite the active preset with the current ranges
  delete  - Delete a preset
  export  - Write a preset as YAML
  import  - Create a preset from a YAML file

A preset can be referred to by id, unique id prefix or exact name.`,
	RunE: runPresetList,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets",
	RunE:  runPresetList,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current ranges as a new preset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := trainer.SavePreset(strings.Join(args, " "))
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Saved preset %s (%s).", p.Name, p.ID)
		return nil
	},
}

var presetLoadCmd = &cobra.Command{
	Use:   "load <preset>",
	Short: "Replace the current ranges with a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePreset(trainer.Presets().List(), args[0])
		if err != nil {
			return err
		}
		if err := trainer.LoadPreset(p.ID); err != nil {
			return err
		}
		pterm.Success.Printfln("Loaded preset %s.", p.Name)
		return nil
	},
}

var presetUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Overwrite the active preset with the current ranges",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := trainer.UpdatePreset(); err != nil {
			return err
		}
		p, _ := trainer.Presets().Active()
		pterm.Success.Printfln("Updated preset %s.", p.Name)
		return nil
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <preset>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePreset(trainer.Presets().List(), args[0])
		if err != nil {
			return err
		}
		if err := trainer.DeletePreset(p.ID); err != nil {
			return err
		}
		pterm.Success.Printfln("Deleted preset %s.", p.Name)
		return nil
	},
}

var presetExportCmd = &cobra.Command{
	Use:   "export <preset> [file]",
	Short: "Write a preset as YAML to a file or stdout",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePreset(trainer.Presets().List(), args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return presets.Export(cmd.OutOrStdout(), p)
		}
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		if err := presets.Export(f, p); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		pterm.Success.Printfln("Exported %s to %s.", p.Name, args[1])
		return nil
	},
}

var presetImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Create a preset from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		p, err := trainer.ImportPreset(f)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Imported preset %s (%s).", p.Name, p.ID)
		return nil
	},
}

func init() {
	presetCmd.AddCommand(presetListCmd, presetSaveCmd, presetLoadCmd, presetUpdateCmd,
		presetDeleteCmd, presetExportCmd, presetImportCmd)
}

func runPresetList(cmd *cobra.Command, args []string) error {
	list := trainer.Presets().List()
	if len(list) == 0 {
		pterm.Info.Println("No saved presets. Use: trainer preset save <name>")
		return nil
	}
	table, err := presetTable(list, trainer.Presets().ActiveID())
	if err != nil {
		return err
	}
	pterm.Println(table)
	return nil
}

// resolvePreset finds a preset by exact id, exact name or unique id prefix.
func resolvePreset(list []presets.Preset, ref string) (presets.Preset, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return presets.Preset{}, fmt.Errorf("empty preset reference")
	}
	for _, p := range list {
		if p.ID == ref {
			return p, nil
		}
	}
	var byName []presets.Preset
	for _, p := range list {
		if p.Name == ref {
			byName = append(byName, p)
		}
	}
	if len(byName) == 1 {
		return byName[0], nil
	}
	if len(byName) > 1 {
		return presets.Preset{}, fmt.Errorf("several presets are named %q, use the id", ref)
	}
	var byPrefix []presets.Preset
	for _, p := range list {
		if strings.HasPrefix(p.ID, ref) {
			byPrefix = append(byPrefix, p)
		}
	}
	switch len(byPrefix) {
	case 0:
		return presets.Preset{}, fmt.Errorf("preset %q not found", ref)
	case 1:
		return byPrefix[0], nil
	}
	return presets.Preset{}, fmt.Errorf("preset %q is ambiguous", ref)
}
