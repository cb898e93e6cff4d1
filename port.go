package netaddr

import "strconv"

// Port is a 16-bit transport-layer port number. The zero value is port 0, which instructs
// the operating system to pick an ephemeral port when binding.
type Port uint16

const (
	// PortMin is the smallest representable port number.
	PortMin Port = 0

	// PortMax is the largest representable port number.
	PortMax Port = 65535
)

// IsReserved returns true if this port falls within the well-known range [0, 1024) which
// typically requires elevated privileges to bind on POSIX systems.
func (p Port) IsReserved() bool {
	return p < 1024
}

// String returns the decimal representation of this port.
func (p Port) String() string {
	return strconv.FormatUint(uint64(p), 10)
}
