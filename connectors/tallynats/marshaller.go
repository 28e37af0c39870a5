package tallynats

import "github.com/goccy/go-json"

type Marshaller interface {
	Marshal(value any) ([]byte, error)
	Unmarshal(data []byte, value any) error
}

type JSONMarshaller struct{}

func (m JSONMarshaller) Marshal(value any) ([]byte, error) {
	return json.Marshal(value)
}

func (m JSONMarshaller) Unmarshal(data []byte, value any) error {
	return json.Unmarshal(data, value)
}
