// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidIdentifier signals an id the store cannot parse.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrLobbyNotFound signals missing lobby.
	ErrLobbyNotFound = errors.New("lobby not found")
	// ErrStoreUnavailable signals a transport failure talking to the store.
	ErrStoreUnavailable = errors.New("store unavailable")
)
