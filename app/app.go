package app

import "fmt"

// App sequences an initialization phase followed by a fixed list of per
// frame systems. State is not kept in a type indexed registry: setups and
// systems are plain closures over the caller's own structs, so every
// dependency is explicit and the execution order is the insertion order.
type App struct {
	setups  []namedFunc
	systems []namedFunc

	initialized bool
}

type namedFunc struct {
	name string
	fn   func() error
}

// AddSetup registers fn to run once, before the first frame.
func (a *App) AddSetup(name string, fn func() error) {
	a.setups = append(a.setups, namedFunc{name: name, fn: fn})
}

// AddSystem registers fn to run every frame, after all setups.
func (a *App) AddSystem(name string, fn func() error) {
	a.systems = append(a.systems, namedFunc{name: name, fn: fn})
}

// Frame runs one iteration: all setups on the first call, then every
// system in registration order. The first failing function aborts the
// frame and its name is attached to the error.
func (a *App) Frame() error {
	if !a.initialized {
		a.initialized = true

		for _, setup := range a.setups {
			if err := setup.fn(); err != nil {
				return fmt.Errorf("setup %s: %w", setup.name, err)
			}
		}
	}

	for _, system := range a.systems {
		if err := system.fn(); err != nil {
			return fmt.Errorf("system %s: %w", system.name, err)
		}
	}

	return nil
}
