package tally

type Counter struct {
	Current int `json:"current"`
}

func (counter *Counter) Value() int {
	return counter.Current
}

type Snapshot struct {
	Value    int      `json:"value"`
	Revision Revision `json:"revision"`
}

func (snapshot Snapshot) Initialized() bool {
	return snapshot.Revision != InitialRevision
}
