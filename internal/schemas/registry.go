package schemas

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownSchema is returned by Lookup for a name it does not know.
var ErrUnknownSchema = errors.New("unknown schema")

var registry = map[string]Schema{
	"gregorian":           GregorianSchema{},
	"julian":              JulianSchema{},
	"egyptian12":          Egyptian12Schema{},
	"egyptian13":          Egyptian13Schema{},
	"coptic12":            Coptic12Schema{},
	"coptic13":            Coptic13Schema{},
	"french-republican12": FrenchRepublican12Schema{},
	"french-republican13": FrenchRepublican13Schema{},
	"persian2820":         Persian2820Schema{},
	"tabular-islamic":     TabularIslamicSchema{},
	"tropicalia":          TropicaliaSchema{},
	"tropicalia3031":      Tropicalia3031Schema{},
	"tropicalia3130":      Tropicalia3130Schema{},
}

// Lookup returns the schema registered under name, ignoring case.
func Lookup(name string) (Schema, error) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	return s, nil
}

// Names returns the registered schema names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
