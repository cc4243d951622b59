package service

import "errors"

// Gym lifecycle errors. Handlers match them with errors.Is; the underlying
// persistence cause, when any, is wrapped alongside.
var (
	ErrGymAlreadyExists = errors.New("gym already exists")
	ErrGymNotFound      = errors.New("gym not found")
	ErrGymNotCreated    = errors.New("gym could not be created")
	ErrGymNotUpdated    = errors.New("gym could not be updated")
	ErrGymNotDisabled   = errors.New("gym could not be disabled")
)

// User errors
var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserNotCreated    = errors.New("user could not be created")
	ErrUserNotUpdated    = errors.New("user could not be updated")
	ErrUserNotDisabled   = errors.New("user could not be disabled")
)
