package tally

type Delta any

// deltas

type Incremented struct {
	Amount int `json:"amount"`
}

type Decremented struct {
	Amount int `json:"amount"`
}

type ChangeType string

func (changeType ChangeType) String() string {
	return string(changeType)
}

func ChangeTypeOf(delta Delta) ChangeType {
	return ChangeType(NameOf(delta))
}

type ChangeID string

func (id ChangeID) String() string {
	return string(id)
}

type CorrelationID string

func (id CorrelationID) String() string {
	return string(id)
}

type ChangeMetadata struct {
	CorrelationId CorrelationID `json:"correlationId,omitempty"`
	CausationId   ChangeID      `json:"causationId,omitempty"`
}

type Change struct {
	Id        ChangeID       `json:"id"`
	Type      ChangeType     `json:"type"`
	Revision  Revision       `json:"revision"`
	Value     int            `json:"value"`
	Timestamp Timestamp      `json:"timestamp"`
	Metadata  ChangeMetadata `json:"metadata"`
	Data      Data           `json:"data"`
}

func (change *Change) Decode(delta Delta) error {
	return UnmarshalFromData(change.Data, delta)
}
