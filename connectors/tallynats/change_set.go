package tallynats

import "github.com/weegigs/tally-go/tally"

type ChangeRecord struct {
	Id        tally.ChangeID       `json:"id"`
	Type      tally.ChangeType     `json:"type"`
	Revision  tally.Revision       `json:"revision"`
	Value     int                  `json:"value"`
	Timestamp tally.Timestamp      `json:"timestamp"`
	Metadata  tally.ChangeMetadata `json:"metadata"`
	Data      tally.Data           `json:"data"`
}

func recordOf(change tally.Change) ChangeRecord {
	return ChangeRecord{
		Id:        change.Id,
		Type:      change.Type,
		Revision:  change.Revision,
		Value:     change.Value,
		Timestamp: change.Timestamp,
		Metadata:  change.Metadata,
		Data:      change.Data,
	}
}

func (record ChangeRecord) Change() tally.Change {
	return tally.Change{
		Id:        record.Id,
		Type:      record.Type,
		Revision:  record.Revision,
		Value:     record.Value,
		Timestamp: record.Timestamp,
		Metadata:  record.Metadata,
		Data:      record.Data,
	}
}

type ChangeSet struct {
	Counter  string         `json:"counter"`
	Revision tally.Revision `json:"revision"`
	Changes  []ChangeRecord `json:"changes"`
}
