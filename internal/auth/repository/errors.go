package repository

import "errors"

var (
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToMigrate = errors.New("failed to apply migration")
	ErrDuplicateEmail  = errors.New("email already exists")
)
