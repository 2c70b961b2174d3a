// Package mock provides function-field mock implementations of librarian's
// interfaces for testing.
package mock
