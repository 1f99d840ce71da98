package errors

// Code classifies an error for callers that render structured failures.
type Code string

// Error codes
const (
	CodeOK Code = "OK"

	// CodeInvalidArgument covers bad parameters: dice with fewer than one
	// side, unknown condition kinds, malformed duration/save combinations.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeNotFound covers missing content: weapon, target, or encounter ids
	// that resolve to nothing.
	CodeNotFound Code = "NOT_FOUND"

	// CodeFailedPrecondition covers illegal state transitions, such as a
	// death save attempted by a creature that is not dying.
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"

	CodeInternal Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
