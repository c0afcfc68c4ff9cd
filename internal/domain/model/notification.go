package model

import "fmt"

// Notification is a transport-agnostic message for downstream notifiers.
type Notification struct {
	Title       string
	Description string
	Color       int
}

// StatusError reports a delivery the remote endpoint answered with an unexpected status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook returned status %d", e.Code)
}
