package ports

import (
	"context"

	"go.trai.ch/recent/internal/core/domain"
)

// CommandRegistry makes descriptors available to the host menu and command list.
//
// All calls are fire-and-forget: implementations report their own failures.
//
//go:generate go run go.uber.org/mock/mockgen -source=command_registry.go -destination=mocks/mock_command_registry.go -package=mocks
type CommandRegistry interface {
	// RegisterMany registers a batch of descriptors.
	RegisterMany(descriptors []*domain.Descriptor)
	// RegisterOne registers a single descriptor.
	RegisterOne(descriptor *domain.Descriptor)
	// UnregisterOne removes a single descriptor.
	UnregisterOne(descriptor *domain.Descriptor)
	// UnregisterMany removes a batch of descriptors.
	UnregisterMany(descriptors []*domain.Descriptor)
	// UpdateOne refreshes a registered descriptor in place.
	UpdateOne(ctx context.Context, descriptor *domain.Descriptor)
}

// ActionCatalog looks up registered descriptors by ID.
type ActionCatalog interface {
	// Lookup returns the descriptor registered under id.
	Lookup(id string) (*domain.Descriptor, bool)
}
