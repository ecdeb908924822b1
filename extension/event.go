package extension

// BaseEvent is the contract runtime event implementations must satisfy.
// Custom events declared by extensions are constructed by cloning a supplied
// prototype instance.
type BaseEvent interface {
	// Clone returns a newly owned deep copy of the event
	Clone() BaseEvent
}

// EventMetadata describes a custom event type declared by an extension.
type EventMetadata struct {
	typeName          string
	displayName       string
	description       string
	group             string
	smallIconFilename string

	prototype BaseEvent
}

// Type returns the namespaced identifier of the event type
func (m *EventMetadata) Type() string { return m.typeName }

// DisplayName returns the user friendly name shown in the editor
func (m *EventMetadata) DisplayName() string { return m.displayName }

// Description returns the user friendly description of the event type
func (m *EventMetadata) Description() string { return m.description }

// Group returns the editor group the event is listed under
func (m *EventMetadata) Group() string { return m.group }

// SmallIconFilename returns the small icon of the event type
func (m *EventMetadata) SmallIconFilename() string { return m.smallIconFilename }

// CreateInstance returns a newly owned clone of the prototype event, or nil
// if no prototype was supplied at declaration time.
func (m *EventMetadata) CreateInstance() BaseEvent {
	if m.prototype == nil {
		return nil
	}
	return m.prototype.Clone()
}
