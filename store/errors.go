package store

import "errors"

var (
	ErrGet    = errors.New("unable to retrieve entry from entry store")
	ErrSet    = errors.New("unable to store entry in entry store")
	ErrDelete = errors.New("unable to delete entry from entry store")
	ErrClear  = errors.New("unable to clear entry store")
	ErrLen    = errors.New("unable to count entries in entry store")
)
