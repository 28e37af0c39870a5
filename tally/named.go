package tally

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

type Named interface {
	TypeName() string
}

func NameOf(value any) string {
	if named, ok := value.(Named); ok {
		return named.TypeName()
	}

	split := strings.Split(reflect.TypeOf(value).String(), ".")
	segments := make([]string, len(split))
	for index, segment := range split {
		segments[index] = strcase.ToKebab(strings.TrimLeft(segment, "*"))
	}

	namespace := segments[0]
	name := strings.Join(segments[1:], "-")

	return namespace + ":" + name
}
