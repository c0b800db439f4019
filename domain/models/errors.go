package models

import "errors"

// Domain errors. The names mirror the failure contract of the task
// engine: validation errors are raised before any storage access,
// ownership denials surface as not-found, and UnknownError covers
// storage-level failures after they have been logged.
var (
	ErrInvalidTaskID               = errors.New("InvalidTaskId")
	ErrInvalidTaskIDs              = errors.New("InvalidTaskIds")
	ErrInvalidUserID               = errors.New("InvalidUserId")
	ErrInvalidTitle                = errors.New("InvalidTitle")
	ErrInvalidStatus               = errors.New("InvalidStatus")
	ErrInvalidSortKey              = errors.New("InvalidSortKey")
	ErrInvalidPosition             = errors.New("InvalidNewPosition")
	ErrMissingFields               = errors.New("MissingFields")
	ErrFilteringByInexistentStatus = errors.New("FilteringByInexistentStatus")

	// self-referential no-ops are rejected, not silently accepted
	ErrTaskSwapWithItself = errors.New("ErrorSwappingTaskWithItself")

	ErrUnauthorizedStatusesUpdate = errors.New("UnauthorizedTaskStatusesUpdate")
	ErrBatchSomeTasksDontExist    = errors.New("BatchStatusUpdateErrorSomeTasksDontExist")

	// ownership denial / no row matched; never leaks whether the row
	// exists for another user
	ErrTaskNotFound = errors.New("TaskNotFound")
	ErrUserNotFound = errors.New("UserNotFound")

	ErrUnknown = errors.New("UnknownError")
)
