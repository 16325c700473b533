package scripting

import (
	"github.com/l1jgo/ecsrt/internal/core/ecs"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

func (e *Engine) openAPI() {
	mod := e.vm.SetFuncs(e.vm.NewTable(), map[string]lua.LGFunction{
		"create_entity":    e.luaCreateEntity,
		"add_component":    e.luaAddComponent,
		"remove_component": e.luaRemoveComponent,
		"has_component":    e.luaHasComponent,
		"components":       e.luaComponents,
		"entities":         e.luaEntities,
		"log":              e.luaLog,
	})
	e.vm.SetGlobal("ecs", mod)
	e.vm.SetGlobal("register_system", e.vm.NewFunction(e.luaRegisterSystem))
}

func checkEntity(L *lua.LState, n int) ecs.EntityID {
	v := L.CheckInt64(n)
	if v <= 0 || v > int64(^uint32(0)) {
		L.ArgError(n, "entity id out of range")
	}
	return ecs.EntityID(v)
}

func entityList(L *lua.LState, ids []ecs.EntityID) *lua.LTable {
	t := L.CreateTable(len(ids), 0)
	for _, id := range ids {
		t.Append(lua.LNumber(id))
	}
	return t
}

// ecs.create_entity() -> id
func (e *Engine) luaCreateEntity(L *lua.LState) int {
	id, err := e.world.CreateEntity()
	if err != nil {
		L.RaiseError("create_entity: %s", err.Error())
		return 0
	}
	L.Push(lua.LNumber(id))
	return 1
}

// ecs.add_component(id, name)
func (e *Engine) luaAddComponent(L *lua.LState) int {
	id := checkEntity(L, 1)
	name := L.CheckString(2)
	if _, err := e.world.AddComponentByName(id, name); err != nil {
		L.RaiseError("add_component: %s", err.Error())
	}
	return 0
}

// ecs.remove_component(id, name)
func (e *Engine) luaRemoveComponent(L *lua.LState) int {
	id := checkEntity(L, 1)
	name := L.CheckString(2)
	if err := e.world.RemoveComponentByName(id, name); err != nil {
		L.RaiseError("remove_component: %s", err.Error())
	}
	return 0
}

// ecs.has_component(id, name) -> bool
func (e *Engine) luaHasComponent(L *lua.LState) int {
	id := checkEntity(L, 1)
	ct, err := e.world.Registry().Lookup(L.CheckString(2))
	if err != nil {
		L.RaiseError("has_component: %s", err.Error())
		return 0
	}
	L.Push(lua.LBool(e.world.HasComponent(id, ct)))
	return 1
}

// ecs.components(id) -> {name, ...}
func (e *Engine) luaComponents(L *lua.LState) int {
	id := checkEntity(L, 1)
	types, err := e.world.ComponentTypesOf(id)
	if err != nil {
		L.RaiseError("components: %s", err.Error())
		return 0
	}
	t := L.CreateTable(len(types), 0)
	for _, ct := range types {
		t.Append(lua.LString(e.world.Registry().Name(ct)))
	}
	L.Push(t)
	return 1
}

// ecs.entities() -> {id, ...} in creation order
func (e *Engine) luaEntities(L *lua.LState) int {
	L.Push(entityList(L, e.world.Entities()))
	return 1
}

// ecs.log(msg)
func (e *Engine) luaLog(L *lua.LState) int {
	e.log.Info(L.CheckString(1), zap.String("source", "lua"))
	return 0
}

// register_system{name = "...", filter = {"A", "B"}, init = fn, execute = fn}
func (e *Engine) luaRegisterSystem(L *lua.LState) int {
	def := L.CheckTable(1)

	name, ok := def.RawGetString("name").(lua.LString)
	if !ok || name == "" {
		L.ArgError(1, "system needs a string name")
		return 0
	}
	s := &scriptSystem{engine: e, name: string(name)}

	switch f := def.RawGetString("filter").(type) {
	case *lua.LTable:
		s.filterNames = make([]string, 0, f.Len())
		f.ForEach(func(_, v lua.LValue) {
			cn, ok := v.(lua.LString)
			if !ok {
				L.ArgError(1, "filter entries must be component names")
			}
			s.filterNames = append(s.filterNames, string(cn))
		})
	case *lua.LNilType:
	default:
		L.ArgError(1, "filter must be a table of component names")
		return 0
	}

	for key, dst := range map[string]**lua.LFunction{"init": &s.initFn, "execute": &s.execFn} {
		switch fn := def.RawGetString(key).(type) {
		case *lua.LFunction:
			*dst = fn
		case *lua.LNilType:
		default:
			L.ArgError(1, key+" must be a function")
			return 0
		}
	}

	e.systems = append(e.systems, s.wrap())
	e.log.Debug("lua system registered",
		zap.String("system", s.name),
		zap.Strings("filter", s.filterNames),
		zap.Bool("init", s.initFn != nil),
		zap.Bool("execute", s.execFn != nil),
	)
	return 0
}
