package calendar

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/zapponejosh/daycount/internal/schemas"
)

var keyPattern = regexp.MustCompile(`^[a-z][a-z0-9-]{0,63}$`)

// Catalog is a registry of calendars indexed by key. It is safe for
// concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	calendars map[string]*Calendar
	logger    *slog.Logger
}

// NewCatalog returns an empty catalog. A nil logger uses slog.Default.
func NewCatalog(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		calendars: make(map[string]*Calendar),
		logger:    logger,
	}
}

// Add registers a new calendar. Keys are lowercase ASCII letters, digits and
// hyphens, starting with a letter.
func (c *Catalog) Add(key string, schema schemas.Schema, epoch DayNumber) (*Calendar, error) {
	if !keyPattern.MatchString(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.calendars[key]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	cal := New(key, schema, epoch)
	c.calendars[key] = cal

	c.logger.Debug("calendar registered",
		slog.String("key", key),
		slog.String("family", schema.Family().String()),
		slog.Int("epoch", int(epoch)),
		slog.String("years", cal.SupportedYears().String()),
	)

	return cal, nil
}

// Get returns the calendar registered under key. The lookup ignores case
// and surrounding spaces.
func (c *Catalog) Get(key string) (*Calendar, error) {
	key = strings.ToLower(strings.TrimSpace(key))

	c.mu.RLock()
	cal, ok := c.calendars[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCalendarNotFound, key)
	}
	return cal, nil
}

// Keys returns the registered keys in sorted order.
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.calendars))
	for k := range c.calendars {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// All returns the registered calendars sorted by key.
func (c *Catalog) All() []*Calendar {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]*Calendar, 0, len(c.calendars))
	for _, cal := range c.calendars {
		all = append(all, cal)
	}
	slices.SortFunc(all, func(a, b *Calendar) int {
		return strings.Compare(a.key, b.key)
	})
	return all
}

// Len returns the number of registered calendars.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.calendars)
}

// julianEpoch is 1 January 1 of the Julian calendar, two days before the
// Gregorian one.
const julianEpoch DayNumber = -2

// builtin lists the calendars of NewDefaultCatalog with their epochs.
var builtin = []struct {
	key    string
	schema schemas.Schema
	epoch  DayNumber
}{
	{"gregorian", schemas.GregorianSchema{}, 0},
	{"julian", schemas.JulianSchema{}, julianEpoch},
	{"egyptian", schemas.Egyptian12Schema{}, -272_788},
	{"egyptian13", schemas.Egyptian13Schema{}, -272_788},
	{"armenian", schemas.Egyptian12Schema{}, 201_442},
	{"armenian13", schemas.Egyptian13Schema{}, 201_442},
	{"coptic", schemas.Coptic12Schema{}, 103_604},
	{"coptic13", schemas.Coptic13Schema{}, 103_604},
	{"ethiopic", schemas.Coptic12Schema{}, 2795},
	{"ethiopic13", schemas.Coptic13Schema{}, 2795},
	{"persian", schemas.Persian2820Schema{}, 226_895},
	{"tabular-islamic", schemas.TabularIslamicSchema{}, 227_014},
	{"french-republican", schemas.FrenchRepublican12Schema{}, 654_414},
	{"french-republican13", schemas.FrenchRepublican13Schema{}, 654_414},
	{"tropicalia", schemas.TropicaliaSchema{}, 0},
	{"tropicalia3031", schemas.Tropicalia3031Schema{}, 0},
	{"tropicalia3130", schemas.Tropicalia3130Schema{}, 0},
}

// NewDefaultCatalog returns a catalog holding the built-in calendars.
func NewDefaultCatalog(logger *slog.Logger) *Catalog {
	c := NewCatalog(logger)
	for _, b := range builtin {
		if _, err := c.Add(b.key, b.schema, b.epoch); err != nil {
			// The table above is static; a failure is a programming error.
			panic(err)
		}
	}
	c.logger.Info("calendar catalog ready", slog.Int("calendars", c.Len()))
	return c
}
