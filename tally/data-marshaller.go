package tally

import (
	"fmt"

	"github.com/goccy/go-json"
)

const JSONEncoding = "application/json"

type Data struct {
	Encoding string `json:"encoding"`
	Data     []byte `json:"data"`
}

type InvalidEncodingError struct {
	Expected string
	Actual   string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("expected encoding %s, received %s", e.Expected, e.Actual)
}

func InvalidEncoding(expected string, actual string) error {
	return &InvalidEncodingError{Expected: expected, Actual: actual}
}

func MarshalToData(value any) (Data, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return Data{}, err
	}

	return Data{Encoding: JSONEncoding, Data: encoded}, nil
}

func UnmarshalFromData(data Data, value any) error {
	if data.Encoding != JSONEncoding {
		return InvalidEncoding(JSONEncoding, data.Encoding)
	}

	return json.Unmarshal(data.Data, value)
}
