package filename

import "errors"

var (
	// ErrReservedName is returned when the base name matches a Windows device
	// name such as CON or COM1, regardless of case.
	ErrReservedName = errors.New("name is a reserved device name")

	// ErrNameTooLong is returned when name plus extension exceeds the allowed
	// length.
	ErrNameTooLong = errors.New("name exceeds maximum length")

	// ErrInvalidCharacters is returned when the name contains filesystem-unsafe
	// characters.
	ErrInvalidCharacters = errors.New("name contains invalid characters")

	// ErrInvalidEdges is returned when the name starts or ends with whitespace
	// or a dot.
	ErrInvalidEdges = errors.New("name has invalid leading or trailing characters")
)
