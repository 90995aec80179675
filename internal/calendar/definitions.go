package calendar

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/daycount/internal/schemas"
)

// Definition describes a calendar to register: a named schema and the day
// its year 1 begins. The epoch is given either as a day number or as a
// Gregorian date (YYYY-MM-DD), not both.
//
//	calendars:
//	  - key: shire
//	    schema: tropicalia3031
//	    epoch_gregorian: "1601-01-01"
type Definition struct {
	Key            string     `yaml:"key"`
	Schema         string     `yaml:"schema"`
	Epoch          *DayNumber `yaml:"epoch,omitempty"`
	EpochGregorian string     `yaml:"epoch_gregorian,omitempty"`
}

// EpochDayNumber resolves the epoch of the definition.
func (d Definition) EpochDayNumber() (DayNumber, error) {
	switch {
	case d.Epoch != nil && d.EpochGregorian != "":
		return 0, errors.New("epoch and epoch_gregorian are mutually exclusive")
	case d.Epoch != nil:
		return *d.Epoch, nil
	case d.EpochGregorian != "":
		t, err := time.Parse(time.DateOnly, d.EpochGregorian)
		if err != nil {
			return 0, fmt.Errorf("invalid epoch_gregorian %q: %w", d.EpochGregorian, err)
		}
		c, err := CivilDateFromTime(t)
		if err != nil {
			return 0, err
		}
		return c.DayNumber(), nil
	default:
		return 0, errors.New("one of epoch or epoch_gregorian is required")
	}
}

// LoadDefinitions decodes a YAML document holding a list of calendars
// under the "calendars" key. Unknown fields are rejected.
func LoadDefinitions(r io.Reader) ([]Definition, error) {
	var doc struct {
		Calendars []Definition `yaml:"calendars"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode calendar definitions: %w", err)
	}
	return doc.Calendars, nil
}

// AddDefinitions registers every definition and returns the calendars that
// were added. A failing definition does not stop the others; all failures
// are joined in the returned error.
func (c *Catalog) AddDefinitions(defs []Definition) ([]*Calendar, error) {
	var (
		added []*Calendar
		errs  []error
	)
	for i, def := range defs {
		cal, err := c.addDefinition(def)
		if err != nil {
			errs = append(errs, fmt.Errorf("calendar %d (%q): %w", i+1, def.Key, err))
			continue
		}
		added = append(added, cal)
	}

	c.logger.Info("calendar definitions loaded",
		slog.Int("added", len(added)),
		slog.Int("failed", len(errs)),
	)
	return added, errors.Join(errs...)
}

func (c *Catalog) addDefinition(def Definition) (*Calendar, error) {
	schema, err := schemas.Lookup(def.Schema)
	if err != nil {
		return nil, err
	}
	epoch, err := def.EpochDayNumber()
	if err != nil {
		return nil, err
	}
	return c.Add(def.Key, schema, epoch)
}
