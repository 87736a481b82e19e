package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/preflop-trainer/application"
	"github.com/luca-patrignani/preflop-trainer/config"
	"github.com/luca-patrignani/preflop-trainer/domain/drill"
	"github.com/luca-patrignani/preflop-trainer/domain/presets"
	"github.com/luca-patrignani/preflop-trainer/domain/ranges"
	"github.com/luca-patrignani/preflop-trainer/storage"
)

var (
	envFile     string
	dataDir     string
	storageKind string

	cfg     *config.Config
	logger  *slog.Logger
	kv      *storage.Store
	trainer *application.Trainer
)

var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Preflop range trainer",
	Long: `Edit the hands you open from every position, save them as presets
and drill yourself on random hands.

Commands:
  edit    - Edit the ranges interactively
  show    - Print the ranges
  drill   - Quiz yourself on the ranges
  preset  - Manage saved presets
  reset   - Clear ranges or all stored data`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file with TRAINER_* settings")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override TRAINER_DATA_DIR")
	rootCmd.PersistentFlags().StringVar(&storageKind, "storage", "", "override TRAINER_STORAGE (file, sqlite, memory)")

	rootCmd.AddCommand(editCmd, showCmd, drillCmd, presetCmd, resetCmd, envCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if storageKind != "" {
		cfg.Storage = storageKind
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger = newLogger(level)
	slog.SetDefault(logger)

	backend, err := storage.Open(cfg.Storage, cfg.DataDir, cfg.QuotaBytes)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	kv = storage.New(backend, storage.WithLogger(logger))
	trainer = newTrainer(kv, cfg, logger)
	logger.Debug("storage ready", "kind", cfg.Storage, "dir", cfg.DataDir)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if kv == nil {
		return nil
	}
	return kv.Close()
}

// newLogger backs log/slog with the pterm logger.
func newLogger(level slog.Level) *slog.Logger {
	pl := pterm.DefaultLogger.WithLevel(ptermLevel(level))
	return slog.New(pterm.NewSlogHandler(pl))
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	}
	return pterm.LogLevelError
}

func newTrainer(kv *storage.Store, cfg *config.Config, logger *slog.Logger) *application.Trainer {
	r := ranges.NewStore(kv, ranges.WithLogger(logger))
	p := presets.NewManager(kv, presets.WithLogger(logger))

	d := drill.NewEngine(r)
	if cfg.Seed != 0 {
		d = drill.NewEngine(r, drill.WithSeed(cfg.Seed))
	}
	return application.New(r, p, d,
		application.WithDrillLength(cfg.DrillLength),
		application.WithLogger(logger),
	)
}

func banner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("reflop ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("T", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("rainer", pterm.FgDarkGray.ToStyle()),
	).Render()
}
