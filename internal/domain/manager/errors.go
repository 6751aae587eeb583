package manager

import "errors"

var (
	ErrMappingNotFound = errors.New("manager mapping not found")
	ErrMappingExists   = errors.New("employee is already mapped to this manager")
)
