package transfer

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var (
	registry    map[string]func() Func
	registryMux sync.RWMutex
)

func init() {
	list := []func() Func{
		Tanh,
		Softsign,
		Logistic,
		BinaryStep,
		ReLU,
		Softplus,
		Sine,
		Gaussian,
		Arctan,
		Sinc,
		Identity,
	}

	registry = make(map[string]func() Func, len(list))
	for _, f := range list {
		if err := Register(f); err != nil {
			panic(err)
		}
	}
}

// Register adds a Func to the set available through ByName, keyed by its Name. Register
// returns an error if the constructor is nil, returns nil, or if the name is already taken.
func Register(f func() Func) error {
	if f == nil {
		return errors.Errorf("Can't register transfer function, constructor is nil")
	}

	fn := f()
	if fn == nil {
		return errors.Errorf("Can't register transfer function, constructor returned nil")
	}

	registryMux.Lock()
	defer registryMux.Unlock()

	if _, ok := registry[fn.Name()]; ok {
		return errors.Errorf("Can't register transfer function, name %q is already taken", fn.Name())
	}

	registry[fn.Name()] = f
	return nil
}

// ByName returns the registered Func with the given name.
func ByName(name string) (Func, error) {
	registryMux.RLock()
	f, ok := registry[name]
	registryMux.RUnlock()

	if !ok {
		return nil, errors.Errorf("No transfer function with name %q", name)
	}

	return f(), nil
}

// Names returns the names of all registered transfer functions, sorted.
func Names() []string {
	registryMux.RLock()
	defer registryMux.RUnlock()

	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}
