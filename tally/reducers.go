package tally

type Reducer interface {
	Reduce(counter *Counter, change *Change) error
}

type ReducerFunction[D any] func(counter *Counter, delta *D) error

func (f ReducerFunction[D]) Reduce(counter *Counter, change *Change) error {
	var delta D
	if err := change.Decode(&delta); err != nil {
		return err
	}

	return f(counter, &delta)
}

type Reducers map[ChangeType]Reducer

// reducers

func incremented() Reducer {
	var reducer ReducerFunction[Incremented] = func(counter *Counter, incremented *Incremented) error {
		counter.Current = floored(counter.Current + incremented.Amount)
		return nil
	}

	return reducer
}

func decremented() Reducer {
	var reducer ReducerFunction[Decremented] = func(counter *Counter, decremented *Decremented) error {
		counter.Current = floored(counter.Current - decremented.Amount)
		return nil
	}

	return reducer
}

// the counter never reads below zero, whatever sequence of deltas arrives
func floored(value int) int {
	if value < 0 {
		return 0
	}

	return value
}

func DefaultReducers() Reducers {
	return Reducers{
		ChangeTypeOf(Incremented{}): incremented(),
		ChangeTypeOf(Decremented{}): decremented(),
	}
}
