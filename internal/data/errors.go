package data

import "errors"

var (
	ErrDuplicateStatLine = errors.New("duplicate stat line")
	ErrEmptyBatch        = errors.New("stat batch is empty")
)
