package scripting

import (
	"fmt"

	"github.com/l1jgo/ecsrt/internal/core/ecs"
	"github.com/l1jgo/ecsrt/internal/core/system"
	lua "github.com/yuin/gopher-lua"
)

// scriptSystem is a system whose hooks are Lua functions. wrap picks the
// Go type exposing exactly the hooks the script defined.
type scriptSystem struct {
	engine      *Engine
	name        string
	filterNames []string
	filter      *ecs.Filter
	initFn      *lua.LFunction
	execFn      *lua.LFunction
}

func (s *scriptSystem) Name() string { return s.name }

func (s *scriptSystem) wrap() system.System {
	switch {
	case s.initFn != nil && s.execFn != nil:
		return &scriptInitExec{s}
	case s.initFn != nil:
		return &scriptInit{s}
	case s.execFn != nil:
		return &scriptExec{s}
	}
	return s
}

// resolveFilter builds the filter on first use.
func (s *scriptSystem) resolveFilter() (*ecs.Filter, error) {
	if s.filter != nil {
		return s.filter, nil
	}
	types := make([]ecs.ComponentType, 0, len(s.filterNames))
	for _, n := range s.filterNames {
		ct, err := s.engine.world.Registry().Lookup(n)
		if err != nil {
			return nil, err
		}
		types = append(types, ct)
	}
	s.filter = s.engine.world.Filter(types...)
	return s.filter, nil
}

func (s *scriptSystem) runInit() error {
	if err := s.engine.call(s.initFn); err != nil {
		return fmt.Errorf("lua %s.init: %w", s.name, err)
	}
	return nil
}

// runExecute passes the filter's current members (or nil without a filter).
func (s *scriptSystem) runExecute() error {
	arg := lua.LValue(lua.LNil)
	if s.filterNames != nil {
		f, err := s.resolveFilter()
		if err != nil {
			return fmt.Errorf("lua %s: %w", s.name, err)
		}
		arg = entityList(s.engine.vm, f.Entities())
	}
	if err := s.engine.call(s.execFn, arg); err != nil {
		return fmt.Errorf("lua %s.execute: %w", s.name, err)
	}
	return nil
}

type scriptInit struct{ *scriptSystem }

func (s *scriptInit) Init() error { return s.runInit() }

type scriptExec struct{ *scriptSystem }

func (s *scriptExec) Execute() error { return s.runExecute() }

type scriptInitExec struct{ *scriptSystem }

func (s *scriptInitExec) Init() error    { return s.runInit() }
func (s *scriptInitExec) Execute() error { return s.runExecute() }
