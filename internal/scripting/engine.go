package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/l1jgo/ecsrt/internal/core/ecs"
	"github.com/l1jgo/ecsrt/internal/core/system"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM whose scripts define systems against a
// world. Scripts see an `ecs` table and call register_system{...}.
// Single-goroutine access only, same as the world it drives.
type Engine struct {
	vm      *lua.LState
	world   *ecs.World
	log     *zap.Logger
	systems []system.System
}

func NewEngine(w *ecs.World, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, world: w, log: log}
	e.openAPI()
	return e
}

func (e *Engine) Close() {
	e.vm.Close()
}

// LoadDir loads every .lua file in dir in name order. A missing dir is skipped.
func (e *Engine) LoadDir(dir string) error {
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
		if err := e.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) LoadFile(path string) error {
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", path))
	return nil
}

// LoadString runs src as a chunk named name.
func (e *Engine) LoadString(name, src string) error {
	fn, err := e.vm.LoadString(src)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	e.vm.Push(fn)
	if err := e.vm.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

// Systems returns the systems scripts registered so far, in registration order.
func (e *Engine) Systems() []system.System {
	out := make([]system.System, len(e.systems))
	copy(out, e.systems)
	return out
}

// call invokes fn with args in protected mode.
func (e *Engine) call(fn *lua.LFunction, args ...lua.LValue) error {
	return e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)
}
