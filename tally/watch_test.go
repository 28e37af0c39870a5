package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionsHaveUniqueIds(t *testing.T) {
	set := NewObserverSet()

	one := set.Watch(NewChangeRecorder())
	two := set.Watch(NewChangeRecorder())

	assert.NotEqual(t, one.Id(), two.Id())
	assert.Equal(t, 2, set.Size())
}

func TestCancelIsIdempotent(t *testing.T) {
	set := NewObserverSet()

	recorder := NewChangeRecorder()
	subscription := set.Watch(recorder)

	subscription.Cancel()
	subscription.Cancel()

	assert.Equal(t, 0, set.Size())

	set.Notify(Change{Type: ChangeTypeOf(Incremented{}), Value: 1})
	assert.Equal(t, 0, recorder.Count())
}

func TestNotifyReachesEveryObserver(t *testing.T) {
	set := NewObserverSet()

	first := NewChangeRecorder()
	second := NewChangeRecorder()

	defer set.Watch(first).Cancel()
	defer set.Watch(second).Cancel()

	set.Notify(Change{Type: ChangeTypeOf(Incremented{}), Value: 1})

	assert.Equal(t, 1, first.Count())
	assert.Equal(t, 1, second.Count())
}

func TestObserverFuncAdaptsFunctions(t *testing.T) {
	set := NewObserverSet()

	var seen []int
	subscription := set.Watch(ObserverFunc(func(change Change) {
		seen = append(seen, change.Value)
	}))
	defer subscription.Cancel()

	set.Notify(Change{Value: 4})

	assert.Equal(t, []int{4}, seen)
}
