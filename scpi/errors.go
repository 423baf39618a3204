package scpi

import "errors"

var (
	// ErrNotQuery indicates that a write-direction command was given to an
	// operation that requires a query.
	ErrNotQuery = errors.New("command is not a query")

	// ErrNotDecodable indicates that a response decode was requested for a
	// command whose response shape is None.
	ErrNotDecodable = errors.New("command has no decodable response shape")

	// ErrShapeMismatch indicates that a command's direction and response shape
	// are inconsistent: writes must have shape None, queries must not.
	ErrShapeMismatch = errors.New("command direction and response shape are inconsistent")

	// ErrChainNotWrite indicates that a command chain contained a query command.
	ErrChainNotWrite = errors.New("command chain only supports write commands")

	// ErrChainPlaceholder indicates that a command chain contained a command with
	// format placeholders.
	ErrChainPlaceholder = errors.New("command chain does not support format placeholders")

	// ErrArgumentCount indicates that the number of arguments does not match the
	// command template's placeholders.
	ErrArgumentCount = errors.New("argument count does not match command placeholders")

	// ErrArgumentType indicates that an argument type is incompatible with its
	// placeholder in the command template.
	ErrArgumentType = errors.New("argument type does not match command placeholder")
)
