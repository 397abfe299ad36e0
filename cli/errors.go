package cli

import (
	"github.com/ka2n/minigrep/config"
	"github.com/morikuni/failure/v2"
)

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	ReadFailed      ErrorCode = "ReadFailed"
	InvalidEncoding ErrorCode = "InvalidEncoding"
	WriteFailed     ErrorCode = "WriteFailed"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Describe renders err the way it is reported on standard error.
// Argument problems and runtime failures get distinct prefixes.
func Describe(err error) string {
	var msg string
	if fmsg := failure.MessageOf(err); fmsg != "" {
		msg = fmsg.String()
	} else {
		msg = err.Error()
	}

	if failure.Is(err, config.NotEnoughArguments) {
		return "Problem parsing arguments: " + msg
	}
	return "Application error: " + msg
}
