package ports

import "go.trai.ch/recent/internal/core/domain"

// DescriptorFactory synthesizes the command descriptor that reopens a resource.
//
//go:generate go run go.uber.org/mock/mockgen -source=descriptor_factory.go -destination=mocks/mock_descriptor_factory.go -package=mocks
type DescriptorFactory interface {
	// Create returns a new descriptor bound to identifier.
	Create(identifier string) *domain.Descriptor
}

// DisplayFormatter shortens identifiers for display.
type DisplayFormatter interface {
	// Shorten returns a label for identifier no wider than maxLength.
	Shorten(identifier string, maxLength int) string
}
