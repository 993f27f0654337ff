package catalog

import "errors"

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrPackageNotFound      = errors.New("package not found")
	ErrPhotographerNotFound = errors.New("photographer not found")
)
