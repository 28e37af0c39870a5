package tally

import (
	"errors"
	"sync"
)

// Registry is the hand-off point between the composition root and the views.
// The root publishes exactly one container; everything else resolves it. There
// is deliberately no package level default, consumers receive a Registry.
type Registry struct {
	mu        sync.RWMutex
	container *Container
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (registry *Registry) Publish(container *Container) error {
	if container == nil {
		return errors.New("cannot publish a nil container")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if registry.container != nil {
		return AlreadyPublished()
	}

	registry.container = container

	return nil
}

func (registry *Registry) Resolve() (*Container, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	if registry.container == nil {
		return nil, UninitializedAccess()
	}

	return registry.container, nil
}
