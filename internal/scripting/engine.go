package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/skyshot/arena/internal/combat"
)

// Engine wraps a single gopher-lua VM holding the damage formulas.
// Single-goroutine access only (simulation loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every script under scriptsDir's
// feature directories. Missing directories are skipped.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	for _, sub := range []string{"core", "combat", "weapon"} {
		if err := e.loadDir(filepath.Join(scriptsDir, sub)); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}
	return e, nil
}

// NewEngineFromSource builds an engine from inline Lua, used by tools and tests.
func NewEngineFromSource(src string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load inline script: %w", err)
	}
	return &Engine{vm: vm, log: log}, nil
}

func (e *Engine) Close() {
	e.vm.Close()
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// callNumber invokes a global Lua function with numeric args and expects one
// numeric result. On any failure it logs and returns fallback.
func (e *Engine) callNumber(name string, fallback float64, args ...float64) float64 {
	fn := e.vm.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		e.log.Error("lua function not found", zap.String("func", name))
		return fallback
	}
	largs := make([]lua.LValue, len(args))
	for i, a := range args {
		largs[i] = lua.LNumber(a)
	}
	if err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, largs...); err != nil {
		e.log.Error("lua call error", zap.String("func", name), zap.Error(err))
		return fallback
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		e.log.Error("lua function returned non-number", zap.String("func", name), zap.String("type", ret.Type().String()))
		return fallback
	}
	return float64(n)
}

// ApplyStrength scales outgoing player damage (apply_strength).
func (e *Engine) ApplyStrength(dmg, strength float64) float64 {
	return e.callNumber("apply_strength", dmg*strength, dmg, strength)
}

// ApplyDefense reduces incoming damage on the player (apply_defense).
func (e *Engine) ApplyDefense(dmg, defense float64) float64 {
	return e.callNumber("apply_defense", dmg, dmg, defense)
}

// StrengthHook binds strength into a mitigation hook for enemies hit by the
// player. strength is read on every call so stat upgrades apply immediately.
func (e *Engine) StrengthHook(strength func() float64) combat.Mitigation {
	return func(amount float64) float64 {
		return e.ApplyStrength(amount, strength())
	}
}

// DefenseHook is the player's own mitigation hook.
func (e *Engine) DefenseHook(defense func() float64) combat.Mitigation {
	return func(amount float64) float64 {
		return e.ApplyDefense(amount, defense())
	}
}
