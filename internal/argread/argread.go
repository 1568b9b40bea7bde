// Package argread extracts the text to convert from a process argument vector.
package argread

import "errors"

// ErrMissingArgument is matched by errors.Is for any *MissingArgumentError.
var ErrMissingArgument = errors.New("missing argument")

const missingArgumentMsg = "Did not pass in a string to be converted"

// MissingArgumentError reports that no text was supplied after the program name.
type MissingArgumentError struct{}

func (e *MissingArgumentError) Error() string { return missingArgumentMsg }

// ExitCode lets the entry point map the error to a process status.
func (e *MissingArgumentError) ExitCode() int { return 1 }

// Is makes errors.Is(err, ErrMissingArgument) report true.
func (e *MissingArgumentError) Is(target error) bool { return target == ErrMissingArgument }

// First returns the first positional argument of args, where args[0] is the
// program name. Anything after the first positional argument is ignored.
func First(args []string) (string, error) {
	if len(args) < 2 {
		return "", &MissingArgumentError{}
	}
	return args[1], nil
}
