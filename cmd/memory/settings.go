package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/memory"
	"github.com/vovakirdan/memory-match/internal/storage"
)

var (
	flagSound     bool
	flagVibration bool
	flagSetDiff   string
	flagDump      bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Without flags, prints the saved settings. Any flag given is changed
and the settings are saved.

Examples:
  memory settings
  memory settings --sound=false
  memory settings --difficulty hard --vibration=true
  memory settings --dump-config > ~/.memory-match/configs/memory.yaml`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagSound, "sound", true, "Ring the terminal bell on flips and matches")
	settingsCmd.Flags().BoolVar(&flagVibration, "vibration", true, "Log haptic patterns")
	settingsCmd.Flags().StringVar(&flagSetDiff, "difficulty", "", "Default difficulty: easy, medium, hard")
	settingsCmd.Flags().BoolVar(&flagDump, "dump-config", false, "Print the default game config YAML and exit")
}

func runSettings(cmd *cobra.Command, _ []string) error {
	if flagDump {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	settings, _, err := store.Settings()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("sound") {
		settings.SoundEnabled = flagSound
		changed = true
	}
	if flags.Changed("vibration") {
		settings.VibrationEnabled = flagVibration
		changed = true
	}
	if flags.Changed("difficulty") {
		d, err := memory.ParseDifficulty(flagSetDiff)
		if err != nil {
			return err
		}
		settings.Difficulty = string(d)
		changed = true
	}

	if changed {
		if err := store.SetSettings(settings); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sound:      %s\n", onOff(settings.SoundEnabled))
	fmt.Fprintf(out, "Vibration:  %s\n", onOff(settings.VibrationEnabled))
	fmt.Fprintf(out, "Difficulty: %s\n", settings.Difficulty)
	if changed {
		fmt.Fprintln(out, "\nSettings saved.")
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
