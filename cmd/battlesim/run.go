package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jianghu-sim/battlecore/engine"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Run a scenario to completion and print the event log",
	Long:  `Loads a YAML scenario file, runs the battle to completion, and prints every emitted event plus its narration mapping.`,
	RunE:  runBattle,
}

func init() {
	runCmd.Flags().String("config", "", "path to scenario YAML file (required)")
	runCmd.Flags().Int64("seed-override", 0, "override the scenario's rng_seed (0 means use the scenario's value)")
	runCmd.Flags().Int("max-steps", 0, "override the scenario's max_steps safety bound (0 means use the scenario's value)")
	_ = runCmd.MarkFlagRequired("config")
}

func runBattle(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	seedOverride, _ := cmd.Flags().GetInt64("seed-override")
	maxStepsOverride, _ := cmd.Flags().GetInt("max-steps")

	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("loading scenario", zap.String("path", configPath))
	sf, err := loadScenario(configPath)
	if err != nil {
		return err
	}

	facade, err := sf.buildFacade(seedOverride, maxStepsOverride)
	if err != nil {
		return err
	}

	logger.Info("running battle to completion",
		zap.Int64("rng_seed", sf.RNGSeed),
		zap.Int("atb_threshold", sf.ATBThreshold),
		zap.Float64("atb_tick_scale", sf.ATBTickScale),
	)

	events := facade.RunToCompletion()

	for _, e := range events {
		nc := facade.MapEventForNarration(e)
		fmt.Println(formatEvent(e, nc))
	}

	logger.Info("battle finished",
		zap.Int("steps", facade.CurrentStepIndex()),
		zap.Int("events", len(events)),
		zap.String("reason", string(facade.Reason())),
	)

	return nil
}

// formatEvent renders one event plus its narration mapping as a single
// human-readable line. This is display plumbing only — narration template
// selection and text rendering proper belong to a real narration frontend.
func formatEvent(e engine.BattleEvent, nc engine.NarrationContext) string {
	switch e.Kind {
	case engine.EventNoop:
		return fmt.Sprintf("[NOOP] %s has nothing to do (reason=%s)", nc.ActorName, e.Reason)
	case engine.EventDodge:
		return fmt.Sprintf("[DODGE] %s evades %s's %s", nc.TargetName, nc.ActorName, nc.SkillName)
	case engine.EventDefend:
		return fmt.Sprintf("[DEFEND] %s braces against %s's %s", nc.TargetName, nc.ActorName, nc.SkillName)
	case engine.EventDefeat:
		return fmt.Sprintf("[DEFEAT] %s is downed", nc.TargetName)
	default:
		result := "misses"
		if e.Hit {
			result = fmt.Sprintf("hits for %d (%s)", e.Damage, e.DamageBucket)
		}
		crit := ""
		if e.Critical {
			crit = " [critical]"
		}
		return fmt.Sprintf("[%s] %s uses %s on %s: %s%s", nc.NarrativeType, nc.ActorName, nc.SkillName, nc.TargetName, result, crit)
	}
}
