package digest

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnknownAlgorithm indicates a lookup for a name that has not
	// been registered.
	ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")
	// ErrDuplicateAlgorithm indicates a registration under an already
	// taken name.
	ErrDuplicateAlgorithm = errors.New("digest: algorithm already registered")
	// ErrInvalidAlgorithm indicates an algorithm reporting unusable
	// sizes or an empty name.
	ErrInvalidAlgorithm = errors.New("digest: invalid algorithm")
)

var registry = struct {
	mu         sync.RWMutex
	algorithms map[string]Algorithm
}{
	algorithms: make(map[string]Algorithm),
}

// Register makes alg available to Lookup under its name. Names are
// case-insensitive. Registering a name twice fails.
func Register(alg Algorithm) error {
	if alg == nil {
		return fmt.Errorf("%w: nil algorithm", ErrInvalidAlgorithm)
	}

	name := strings.ToLower(alg.Name())
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAlgorithm)
	}

	if alg.ContextSize() <= 0 || alg.OutputSize() <= 0 {
		return fmt.Errorf("%w: %q reports context %d, output %d",
			ErrInvalidAlgorithm, name, alg.ContextSize(), alg.OutputSize())
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.algorithms[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, name)
	}

	registry.algorithms[name] = alg
	return nil
}

// Lookup resolves an algorithm by name, case-insensitively.
func Lookup(name string) (Algorithm, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	alg, ok := registry.algorithms[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return alg, nil
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.algorithms))
	for name := range registry.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
