package model

// Ack is a fixed acknowledgement returned by operations that have no other
// result.
type Ack struct {
	Message string
}
