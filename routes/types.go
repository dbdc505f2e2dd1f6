// This file declares the route Kind, the Transport collaborator interface,
// and the sentinel errors of the routes package.

package routes

import "errors"

// Sentinel errors for route operations.
var (
	// ErrEmptyRoute indicates an operation that needs at least one stop was
	// attempted on a route with none.
	ErrEmptyRoute = errors.New("routes: route has no stops")

	// ErrIncompatibleType indicates a vehicle of one kind was added to a
	// route of another kind.
	ErrIncompatibleType = errors.New("routes: transport kind does not match route kind")

	// ErrUnknownKind indicates a route kind other than bus, train, or ferry.
	ErrUnknownKind = errors.New("routes: unknown route kind")

	// ErrFormat indicates a malformed route description string.
	ErrFormat = errors.New("routes: malformed route description")
)

// Kind identifies the transport mode a route serves.
type Kind string

// The supported route kinds. The string values appear verbatim in the
// network text format.
const (
	Bus   Kind = "bus"
	Train Kind = "train"
	Ferry Kind = "ferry"
)

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case Bus, Train, Ferry:
		return true
	}

	return false
}

// Transport is the view of a vehicle a route needs: its mode, for the
// compatibility check in AddTransport. The vehicles package provides the
// concrete implementations.
type Transport interface {
	Kind() Kind
}
