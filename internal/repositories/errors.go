package repositories

import "errors"

var (
	errUnrecognizedList   = errors.New("product list payload has no recognizable shape")
	errUnrecognizedRecord = errors.New("product payload is not an object")
	errMissingToken       = errors.New("auth response carries no token")
)
