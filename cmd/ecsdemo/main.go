package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/l1jgo/ecsrt/internal/component"
	"github.com/l1jgo/ecsrt/internal/config"
	"github.com/l1jgo/ecsrt/internal/core/ecs"
	"github.com/l1jgo/ecsrt/internal/data"
	"github.com/l1jgo/ecsrt/internal/scripting"
	"github.com/l1jgo/ecsrt/internal/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

// ── Demo driver ───────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/ecs.toml"
	if p := os.Getenv("ECS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. World and component kinds
	world := ecs.NewWorld(
		ecs.WithLogger(log),
		ecs.WithCapacity(cfg.World.EntityCapacity),
	)
	if err := component.Register(world); err != nil {
		return fmt.Errorf("register components: %w", err)
	}
	log.Info("world created", zap.String("world", world.ID().String()))

	// 4. Systems, in execution order
	printSection("Systems")
	world.Register(system.NewSpawnSystem(world, cfg.Demo.SpawnCount))
	printStat("spawn", cfg.Demo.SpawnCount)

	if cfg.Demo.Blueprints != "" {
		table, err := data.LoadBlueprints(cfg.Demo.Blueprints)
		if err != nil {
			return fmt.Errorf("load blueprints: %w", err)
		}
		world.Register(system.NewBlueprintSystem(world, table))
		printStat("blueprint entities", table.Total())
	}

	if cfg.Demo.ScriptsDir != "" {
		lua := scripting.NewEngine(world, log)
		defer lua.Close()
		if err := lua.LoadDir(cfg.Demo.ScriptsDir); err != nil {
			return fmt.Errorf("load scripts: %w", err)
		}
		for _, s := range lua.Systems() {
			world.Register(s)
		}
		printStat("lua systems", len(lua.Systems()))
	}

	world.Register(system.NewCheckSystem(world, os.Stdout))
	printOK(fmt.Sprintf("%d systems registered", world.Systems().Len()))
	fmt.Println()

	// 5. One init pass and one tick
	printSection("Run")
	if err := world.Start(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	fmt.Println()
	printStat("entities", world.EntityCount())
	printStat("filters", world.Filters().Len())
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
