package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUnknownUser       = errors.New("unknown user")
	ErrWrongPassword     = errors.New("wrong password")
	ErrNoCurrentUser     = errors.New("no user is signed in")

	// Journey errors
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// Catalog errors
	ErrMuseumNotFound   = errors.New("museum not found")
	ErrCatalogNotLoaded = errors.New("museum catalog not loaded")

	// Storage errors
	ErrDirectoryNotFound = errors.New("no saved directory")
	ErrDirectoryCorrupt  = errors.New("saved directory is corrupt")
)
