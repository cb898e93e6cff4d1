package netaddr

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidAddress is returned when textual address input cannot be parsed as an IPv4
	// or IPv6 address for the family it was provided to.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidPort is returned when the port segment of a textual address is not a clean
	// decimal numeral within [0, 65535].
	ErrInvalidPort = errors.New("invalid port")

	// ErrPathTooLong is returned when a Unix socket path exceeds the maximum path length
	// permitted by the operating system's socket address record.
	ErrPathTooLong = errors.New("unix socket path too long")

	// ErrUnsupportedFamily is returned when a native socket address record carries an address
	// family outside of IPv4, IPv6, and Unix.
	ErrUnsupportedFamily = errors.New("unsupported address family")
)

// ResolutionCode classifies why a name/service resolution attempt failed. Codes are always
// non-zero on a failed resolution so that callers may branch programmatically while the
// accompanying message remains human-readable.
type ResolutionCode int

const (
	// CodeNoName indicates the host is not known to the resolver.
	CodeNoName ResolutionCode = iota + 1

	// CodeService indicates the service name could not be mapped to a port.
	CodeService

	// CodeFamily indicates no candidate satisfied the requested address family.
	CodeFamily

	// CodeTemporary indicates a transient resolver failure; retrying may succeed.
	CodeTemporary

	// CodeSystem indicates an unclassified system-level resolver failure.
	CodeSystem
)

// String returns the getaddrinfo-style name of this resolution code.
func (c ResolutionCode) String() string {
	switch c {
	case CodeNoName:
		return "no such host"
	case CodeService:
		return "unknown service"
	case CodeFamily:
		return "address family not supported"
	case CodeTemporary:
		return "temporary failure in name resolution"
	case CodeSystem:
		return "system error"
	}

	return "resolution code " + strconv.Itoa(int(c))
}

// ResolutionError reports a failed name/service resolution attempt. It preserves the
// classification code for programmatic branching alongside the underlying resolver error.
type ResolutionError struct {
	Code    ResolutionCode
	Host    string
	Service string
	Err     error
}

// Error returns a human-readable description of the resolution failure.
func (e *ResolutionError) Error() string {
	msg := "address resolution failed: " + e.Code.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying resolver error, if any.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}
