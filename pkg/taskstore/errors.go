package taskstore

import "errors"

// Sentinel errors returned by the store.
var (
	// ErrTaskNotFound is returned when a task ID does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateContent is returned by RegisterContent when the
	// (content_type, external_id) pair was already registered.
	ErrDuplicateContent = errors.New("content already registered")

	// ErrRecoveryExists is returned by CreateRecovery when the original
	// task already has an active recovery.
	ErrRecoveryExists = errors.New("active recovery already exists for task")

	// ErrWorkflowNotFound is returned when a workflow ID does not exist.
	ErrWorkflowNotFound = errors.New("workflow not found")
)
