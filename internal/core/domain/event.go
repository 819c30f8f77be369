package domain

// EventKind names the kind of a resource notification.
type EventKind string

const (
	// EventOpened is emitted when a resource has been opened.
	EventOpened EventKind = "opened"
	// EventSaved is emitted when a resource has been saved.
	EventSaved EventKind = "saved"
)

// Event is a resource notification. The set of implementations is closed:
// ResourceOpened and ResourceSaved.
type Event interface {
	// Kind returns the notification kind.
	Kind() EventKind
	// Resource returns the identifier the notification is about.
	Resource() string

	isEvent()
}

// ResourceOpened reports that a resource was opened.
type ResourceOpened struct {
	Identifier string
}

// Kind implements Event.
func (ResourceOpened) Kind() EventKind { return EventOpened }

// Resource implements Event.
func (e ResourceOpened) Resource() string { return e.Identifier }

func (ResourceOpened) isEvent() {}

// ResourceSaved reports that a resource was saved.
type ResourceSaved struct {
	Identifier string
}

// Kind implements Event.
func (ResourceSaved) Kind() EventKind { return EventSaved }

// Resource implements Event.
func (e ResourceSaved) Resource() string { return e.Identifier }

func (ResourceSaved) isEvent() {}
