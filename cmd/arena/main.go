package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/skyshot/arena/internal/config"
	"github.com/skyshot/arena/internal/core/ecs"
	"github.com/skyshot/arena/internal/core/event"
	coresys "github.com/skyshot/arena/internal/core/system"
	"github.com/skyshot/arena/internal/data"
	"github.com/skyshot/arena/internal/persist"
	"github.com/skyshot/arena/internal/pool"
	"github.com/skyshot/arena/internal/scripting"
	"github.com/skyshot/arena/internal/system"
	"github.com/skyshot/arena/internal/weapon"
	"github.com/skyshot/arena/internal/world"
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

func printBanner(name string, session uuid.UUID) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              arena  v0.1.0                \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m        headless wave simulation           \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mserver:\033[0m %s \033[90m(session %s)\033[0m\n\n", name, session)
}

func printSection(title string) {
	lineLen := max(46-len(title)-1, 3)
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := max(42-len(label)-len(numStr), 3)
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Simulation host ───────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/arena.toml"
	if p := os.Getenv("ARENA_CONFIG"); p != "" {
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

	session := uuid.New()
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	printBanner(cfg.Server.Name, session)

	// 3. Load static tables
	printSection("data")
	tables, err := loadTables(cfg.Paths.Data)
	if err != nil {
		return err
	}
	printStat("enemy templates", tables.Enemies.Count())
	printStat("waypoint sets", tables.Waypoints.Count())
	printStat("drop lists", tables.Drops.Count())
	printStat("waves", len(tables.Waves))
	printStat("upgrades", len(tables.Upgrades))

	luaEngine, err := scripting.NewEngine(cfg.Paths.Scripts, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("lua scripts loaded")
	fmt.Println()

	// 4. Optional kill ledger
	var ledgerRepo *persist.LedgerRepo
	if cfg.Database.DSN != "" {
		printSection("database")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		printOK("PostgreSQL connected")

		version, err := persist.RunMigrations(ctx, db)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		printOK(fmt.Sprintf("ledger schema at version %d", version))

		ledgerRepo = persist.NewLedgerRepo(db)
		if err := ledgerRepo.OpenSession(ctx, session, seed); err != nil {
			return fmt.Errorf("open session: %w", err)
		}
		fmt.Println()
	}

	// 5. Build the simulation
	ecsWorld := ecs.NewWorld()
	bus := event.NewBus()
	sim := cfg.Simulation
	player := world.NewPlayer(sim.PlayerMaxHP, sim.PlayerStrength, sim.PlayerDefense)
	state := world.NewState(ecsWorld, player)
	registry := pool.NewRegistry(ecsWorld, log)

	gun := weapon.NewShotgun(tables.Weapons.Shotgun, cfg.Projectile.HitRadius, state, registry, bus, rng, log)
	factory := system.NewEnemyFactory(cfg, state, registry, bus, luaEngine, tables, rng, log)
	upgrader := system.NewUpgrader(bus, gun, tables.Upgrades, log)

	kills := 0
	event.Subscribe(bus, func(event.EnemyKilled) { kills++ })
	event.Subscribe(bus, func(e event.PlayerDied) {
		log.Warn("player died", zap.Int("wave", state.Wave), zap.Float64("x", e.Position.X), zap.Float64("z", e.Position.Z))
	})
	event.Subscribe(bus, func(e event.PoolPurged) {
		log.Debug("pool purged", zap.String("key", e.Key), zap.Int("destroyed", e.Destroyed))
	})

	// 6. Register systems
	runner := coresys.NewRunner()
	runner.Register(system.NewClockSystem(state))
	runner.Register(system.NewEventDispatchSystem(bus))
	waves := system.NewWaveSystem(state, factory, bus, tables.Waves, sim.WaveInterval, rng, log)
	runner.Register(waves)
	runner.Register(system.NewEnemyAISystem(state))
	playerSys := system.NewPlayerSystem(state, gun, bus, luaEngine, sim.FireInterval, sim.PlayerMass, sim.Gravity, log)
	runner.Register(playerSys)
	runner.Register(system.NewNavigationSystem(state))
	projectiles := system.NewProjectileSystem(state, cfg.Projectile.ExpireInclusive)
	runner.Register(projectiles)
	var ledger *system.LedgerSystem
	if ledgerRepo != nil {
		ledger = system.NewLedgerSystem(bus, ledgerRepo, session, cfg.Database.FlushInterval, log)
		runner.Register(ledger)
	}
	runner.Register(system.NewCleanupSystem(ecsWorld))

	// 7. Start the tick loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(sim.TickRate)
	defer ticker.Stop()

	printSection("running")
	printReady(fmt.Sprintf("tick loop started (tick: %s, seed: %d)", sim.TickRate, seed))
	fmt.Println()

	shutdown := func(reason string) {
		log.Info("simulation stopping", zap.String("reason", reason))
		// deliver the last tick's events so their kills reach the ledger
		bus.SwapBuffers()
		bus.DispatchAll()
		registry.PurgeAll()
		ecsWorld.FlushDestroyQueue()
		if ledger != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := ledger.Flush(ctx); err != nil {
				log.Error("final ledger flush", zap.Int("pending", ledger.Pending()), zap.Error(err))
			}
			if err := ledgerRepo.CloseSession(ctx, session, state.Wave); err != nil {
				log.Error("close session", zap.Error(err))
			}
		}
		expired, consumed := projectiles.Stats()
		log.Info("simulation stopped",
			zap.Uint64("ticks", runner.Ticks()),
			zap.Duration("sim_time", state.Now()),
			zap.Int("wave", state.Wave),
			zap.Int("kills", kills),
			zap.Int("commons", state.Commons),
			zap.Int("player_deaths", playerSys.Deaths()),
			zap.Int("bursts", playerSys.Shots()),
			zap.Int("upgrades", upgrader.Applied()),
			zap.Int("projectiles_expired", expired),
			zap.Int("projectiles_consumed", consumed),
		)
	}

	for {
		select {
		case <-ticker.C:
			runner.Tick(sim.TickRate)
			if sim.MaxTicks > 0 && runner.Ticks() >= uint64(sim.MaxTicks) {
				shutdown("max ticks reached")
				return nil
			}
		case sig := <-shutdownCh:
			shutdown(sig.String())
			return nil
		}
	}
}

func loadTables(dir string) (system.Tables, error) {
	var t system.Tables
	var err error
	if t.Enemies, err = data.LoadEnemyTable(filepath.Join(dir, "enemy_list.yaml")); err != nil {
		return t, fmt.Errorf("load enemy table: %w", err)
	}
	if t.Waypoints, err = data.LoadWaypointTable(filepath.Join(dir, "waypoint_list.yaml")); err != nil {
		return t, fmt.Errorf("load waypoint table: %w", err)
	}
	if t.Drops, err = data.LoadDropTable(filepath.Join(dir, "drop_list.yaml")); err != nil {
		return t, fmt.Errorf("load drop table: %w", err)
	}
	if t.Weapons, err = data.LoadWeaponTable(filepath.Join(dir, "weapon_list.yaml")); err != nil {
		return t, fmt.Errorf("load weapon table: %w", err)
	}
	if t.Waves, err = data.LoadSpawnList(filepath.Join(dir, "spawn_list.yaml")); err != nil {
		return t, fmt.Errorf("load spawn list: %w", err)
	}
	if t.Upgrades, err = data.LoadUpgradeList(filepath.Join(dir, "upgrade_list.yaml")); err != nil {
		return t, fmt.Errorf("load upgrade list: %w", err)
	}
	return t, nil
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
