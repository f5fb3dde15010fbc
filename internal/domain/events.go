package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventCatalogLoaded    EventType = "CatalogLoaded"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted once per effective selection action
type SelectionChangedEvent struct {
	Action    string
	TargetIDs []string
	Selected  []string
	Version   uint64
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// CatalogLoadedEvent is emitted when an item catalog has been read
type CatalogLoadedEvent struct {
	Source string
	Items  int
	Total  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
	Mode string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
