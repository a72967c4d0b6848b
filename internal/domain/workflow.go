package domain

import "context"

// WorkflowState is a state of the event submission workflow.
type WorkflowState string

const (
	StateIdle       WorkflowState = "idle"
	StateValidating WorkflowState = "validating"
	StateSubmitting WorkflowState = "submitting"
	StateSucceeded  WorkflowState = "succeeded"
	StateFailed     WorkflowState = "failed"
)

// NotificationStatus is the severity of a user-facing notification.
type NotificationStatus string

const (
	NotificationSuccess NotificationStatus = "success"
	NotificationError   NotificationStatus = "error"
)

// Notification is a toast-style message emitted by the board.
// swagger:model Notification
type Notification struct {
	Status      NotificationStatus `json:"status"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
}

// Notifier presents notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Navigator moves the user to another view.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}
