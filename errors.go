package microbp

import "fmt"

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrTooFewLayers = Error{"Topology must have at least two layers"}
	ErrNotForwarded = Error{"Network has not been given any inputs"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// ConfigurationError is returned when a Network cannot be built from the topology or Config it
// was given. Field names the offending setting, e.g. "topology[2]" or "LearningRate".
type ConfigurationError struct {
	Field  string
	Reason string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("Invalid configuration of %s: %s", err.Field, err.Reason)
}

// DimensionError is returned when the length of a vector, or an index, does not match the shape
// of the Network. What names the mismatched value, e.g. "inputs" or "targets".
type DimensionError struct {
	What     string
	Expected int
	Got      int
}

func (err *DimensionError) Error() string {
	return fmt.Sprintf("Size mismatch for %s: expected %d, got %d", err.What, err.Expected, err.Got)
}

// StateError is returned when an operation is called before the Network is in a state that
// allows it. Op is the name of the operation.
type StateError struct {
	Op  string
	Err error
}

func (err *StateError) Error() string {
	return fmt.Sprintf("Can't %s: %v", err.Op, err.Err)
}

func (err *StateError) Unwrap() error {
	return err.Err
}

// indexError reports an out-of-range index as a DimensionError, where Expected is the number of
// valid indexes.
func indexError(what string, n, index int) error {
	return &DimensionError{What: what, Expected: n, Got: index}
}
