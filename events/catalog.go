package events

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var _ Repository = &Catalog{}

// Catalog is the read-only set of events, loaded once at startup.
type Catalog struct {
	byID    map[string]Event
	ordered []Event
}

type catalogFile struct {
	Events []catalogEvent `yaml:"events"`
}

type catalogEvent struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Facilitator string    `yaml:"facilitator"`
	Image       string    `yaml:"image"`
	StartTime   time.Time `yaml:"startTime"`
	DisplayTime string    `yaml:"displayTime"`
	Location    Location  `yaml:"location"`
	Price       struct {
		Amount   int64  `yaml:"amount"`
		Currency string `yaml:"currency"`
	} `yaml:"price"`
}

func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(defaultCatalog)
}

// LoadCatalog reads the catalog from path, falling back to the embedded one
// when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewInvalidCatalogError(fmt.Sprintf("Failed to read catalog file %q", path), err)
	}

	return NewCatalog(data)
}

func NewCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, NewInvalidCatalogError("Failed to parse catalog", err)
	}

	c := &Catalog{byID: make(map[string]Event, len(file.Events))}
	for _, e := range file.Events {
		if e.ID == "" {
			return nil, NewInvalidCatalogError("Event without an id", nil)
		}
		if _, ok := c.byID[e.ID]; ok {
			return nil, NewInvalidCatalogError(fmt.Sprintf("Duplicate event id %q", e.ID), nil)
		}
		if e.Price.Currency == "" || money.GetCurrency(e.Price.Currency) == nil {
			return nil, NewInvalidCatalogError(fmt.Sprintf("Event %q has an invalid currency %q", e.ID, e.Price.Currency), nil)
		}

		event := Event{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Facilitator: e.Facilitator,
			Image:       e.Image,
			Location:    e.Location,
			StartTime:   e.StartTime,
			DisplayTime: e.DisplayTime,
			Price:       money.New(e.Price.Amount, e.Price.Currency),
		}
		c.byID[e.ID] = event
		c.ordered = append(c.ordered, event)
	}

	sort.SliceStable(c.ordered, func(i, j int) bool {
		return c.ordered[i].StartTime.Before(c.ordered[j].StartTime)
	})

	return c, nil
}

func (c *Catalog) GetEvent(ctx context.Context, id string) (Event, error) {
	event, ok := c.byID[id]
	if !ok {
		return Event{}, NewEventDoesNotExistsError(fmt.Sprintf("Event with ID %q not found", id), nil)
	}

	return event, nil
}

func (c *Catalog) GetEvents(ctx context.Context) ([]Event, error) {
	result := make([]Event, len(c.ordered))
	copy(result, c.ordered)
	return result, nil
}
