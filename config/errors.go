package config

// ErrorCode defines error types for configuration resolution
type ErrorCode string

const (
	// NotEnoughArguments is returned for any argument count other than three,
	// too many included.
	NotEnoughArguments ErrorCode = "NotEnoughArguments"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
