package cli

import (
	"errors"
	"fmt"
)

// Error codes for fatal run conditions, one per branch of the error
// taxonomy. The code reaches the operator exactly once, on stderr.
const (
	CodeConfig       = "CONFIG_ERROR"
	CodeLogNotFound  = "LOG_NOT_FOUND"
	CodeRead         = "READ_ERROR"
	CodeParseQuality = "PARSE_QUALITY"
	CodeRender       = "RENDER_ERROR"
	CodeWrite        = "WRITE_ERROR"
	CodeInspect      = "INSPECT_ERROR"
)

// fail normalizes fatal error emission across commands.
func fail(globals *Globals, code, message string) error {
	if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}
