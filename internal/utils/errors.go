package util

import "errors"

var (
	ErrInvalidCapacity     = errors.New("memory size must be a positive integer")
	ErrInvalidPolicy       = errors.New("invalid replacement policy")
	ErrEmptySequence       = errors.New("access sequence is empty")
	ErrInvalidAccess       = errors.New("access must be a non-negative integer")
	ErrAlreadyStarted      = errors.New("simulation already started")
	ErrNotFinished         = errors.New("simulation not finished")
	ErrCapacityExceeded    = errors.New("frame table is full")
	ErrPageNotResident     = errors.New("page is not resident")
	ErrPageAlreadyResident = errors.New("page is already resident")
	ErrOutBoundOfFrame     = errors.New("frame idx out of bound")
	ErrNoVictim            = errors.New("no victim frame")
	ErrFileNotFound        = errors.New("file does not exist")
	ErrIsDirectory         = errors.New("path is a directory, not a file")
)
