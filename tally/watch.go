package tally

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Observer interface {
	OnChange(change Change)
}

type ObserverFunc func(change Change)

func (f ObserverFunc) OnChange(change Change) {
	f(change)
}

type Subscription struct {
	id     string
	cancel func(id string)
}

func (subscription *Subscription) Id() string {
	return subscription.id
}

func (subscription *Subscription) Cancel() {
	if subscription.cancel != nil {
		subscription.cancel(subscription.id)
		subscription.cancel = nil
	}
}

func newSubscription(cancel func(id string)) *Subscription {
	return &Subscription{id: uuid.NewString(), cancel: cancel}
}

type ObserverSet struct {
	mu       sync.RWMutex
	log      *zerolog.Logger
	watchers map[string]Observer
}

func NewObserverSet() *ObserverSet {
	return &ObserverSet{log: &log.Logger, watchers: map[string]Observer{}}
}

func (set *ObserverSet) Watch(observer Observer) *Subscription {
	subscription := newSubscription(set.unwatch)

	set.mu.Lock()
	defer set.mu.Unlock()
	set.watchers[subscription.Id()] = observer

	return subscription
}

func (set *ObserverSet) unwatch(id string) {
	set.mu.Lock()
	defer set.mu.Unlock()
	delete(set.watchers, id)
}

func (set *ObserverSet) Size() int {
	set.mu.RLock()
	defer set.mu.RUnlock()
	return len(set.watchers)
}

// Notify delivers the change to every watcher subscribed at the time of the
// call. Delivery is synchronous; watchers must not block.
func (set *ObserverSet) Notify(change Change) {
	set.mu.RLock()
	observers := make([]Observer, 0, len(set.watchers))
	for _, observer := range set.watchers {
		observers = append(observers, observer)
	}
	set.mu.RUnlock()

	for _, observer := range observers {
		set.dispatch(observer, change)
	}
}

func (set *ObserverSet) dispatch(observer Observer, change Change) {
	defer func() {
		if recovered := recover(); recovered != nil {
			set.log.Error().
				Interface("panic", recovered).
				Str("change", change.Type.String()).
				Msg("watcher panicked during notification")
		}
	}()

	observer.OnChange(change)
}
