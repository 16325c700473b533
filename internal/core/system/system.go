package system

// System is anything registered with a Runner. What it does is decided by
// the optional capabilities below; a system with neither is a placeholder
// and both phases skip it.
type System interface {
	Name() string
}

// Initializer runs once, before the first tick.
type Initializer interface {
	System
	Init() error
}

// Executor runs once per tick.
type Executor interface {
	System
	Execute() error
}
