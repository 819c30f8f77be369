// Package ports defines the core interfaces for the application.
package ports

// PreferenceStore persists ordered string lists under named keys.
//
//go:generate go run go.uber.org/mock/mockgen -source=preference_store.go -destination=mocks/mock_preference_store.go -package=mocks
type PreferenceStore interface {
	// LoadList returns the list stored under key.
	// A missing key yields an empty list and no error.
	LoadList(key string) ([]string, error)

	// SaveList overwrites the list stored under key.
	SaveList(key string, values []string) error

	// Clear removes the list stored under key.
	Clear(key string) error
}
