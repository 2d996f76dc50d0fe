// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "errors"

// ErrRecordNotFound is returned when a keyed record has never been written
// (or has been removed). Callers fall back to their documented defaults.
var ErrRecordNotFound = errors.New("record not found")
