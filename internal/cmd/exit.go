// Package cmd provides CLI command implementations.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully, including
	// recoverable no-release outcomes.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigError indicates invalid configuration or a malformed tag.
	ExitConfigError = 2

	// ExitAPIError indicates a source-control API call failed.
	ExitAPIError = 3

	// ExitNotFound indicates required history (tags, releases) was missing.
	ExitNotFound = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigError:
		return "Configuration Error"
	case ExitAPIError:
		return "API Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
