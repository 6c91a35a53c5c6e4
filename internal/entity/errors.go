package entity

import "errors"

var (
	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmailAlreadyExists maps the unique constraint on sales agent emails.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTagAlreadyExists maps the unique constraint on tag names.
	ErrTagAlreadyExists = errors.New("tag already exists")
)
