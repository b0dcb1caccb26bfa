package core

// IDGenerator produces unique, lexicographically sortable identifiers
type IDGenerator interface {
	NewID() string
}
