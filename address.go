// Package netaddr is a typed, family-agnostic representation of socket endpoints for
// TCP/HTTP servers: ports, IPv4/IPv6 addresses, Unix-domain paths, a textual address
// grammar, and a scoped wrapper over the operating system's name resolution facility.
//
// The package produces and inspects addresses; it never performs socket I/O. Transport
// layers consume Address values through the native record boundary (Sockaddr/RawSockaddr)
// to bind listeners and report peer identities.
package netaddr

import (
	"net/netip"

	"github.com/pkg/errors"
)

// Family discriminates which payload interpretation applies to an Address.
type Family uint8

const (
	// FamilyUnspec is the zero family. No Address carries it; it exists so that the zero
	// value of Hints places no restriction on the address family.
	FamilyUnspec Family = iota

	// FamilyIPv4 denotes an IPv4 host and port.
	FamilyIPv4

	// FamilyIPv6 denotes an IPv6 host and port.
	FamilyIPv6

	// FamilyUnix denotes a Unix-domain filesystem path.
	FamilyUnix
)

// String returns the conventional AF_* name of this family.
func (f Family) String() string {
	switch f {
	case FamilyUnspec:
		return "AF_UNSPEC"
	case FamilyIPv4:
		return "AF_INET"
	case FamilyIPv6:
		return "AF_INET6"
	case FamilyUnix:
		return "AF_UNIX"
	}

	return "UNKNOWN"
}

// maxUnixPathLen is the capacity of the sun_path field of the operating system's Unix
// socket address record. Paths at least this long do not fit once null-terminated.
const maxUnixPathLen = 108

// Address is a socket endpoint of one of three families: an IPv4 host and port, an IPv6
// host and port, or a Unix-domain filesystem path.
//
// Exactly one payload is meaningful, selected by the family tag; accessors for payloads of
// the other families report absence structurally rather than failing. Conversion to the
// operating system's native socket address record happens only at the Sockaddr and
// RawSockaddr boundaries, so no internal logic ever reinterprets raw record bytes.
//
// An Address is an immutable value: it may be freely copied and read concurrently.
type Address struct {
	family Family

	// IP families only.
	ip   netip.Addr
	port Port

	// Unix family only.
	path string
}

// NewIpv4Address instantiates an IPv4-family address from a host and port.
func NewIpv4Address(ip Ipv4, port Port) Address {
	return Address{family: FamilyIPv4, ip: netip.AddrFrom4(ip.Bytes()), port: port}
}

// NewIpv6Address instantiates an IPv6-family address from a host and port.
func NewIpv6Address(ip Ipv6, port Port) Address {
	return Address{family: FamilyIPv6, ip: netip.AddrFrom16(ip.Bytes()), port: port}
}

// UnixAddress instantiates a Unix-family address from a filesystem path. It fails with
// ErrInvalidAddress on an empty path, and with ErrPathTooLong should the path not fit the
// operating system's socket address record: oversized paths are rejected outright, never
// truncated.
func UnixAddress(path string) (Address, error) {
	if path == "" {
		return Address{}, errors.Wrap(ErrInvalidAddress, "empty unix socket path")
	}

	if len(path) >= maxUnixPathLen {
		return Address{}, errors.Wrapf(ErrPathTooLong, "%d bytes exceeds the %d byte maximum", len(path), maxUnixPathLen-1)
	}

	return Address{family: FamilyUnix, path: path}, nil
}

// Family returns the family tag selecting the payload of this address.
func (a Address) Family() Family {
	return a.family
}

// Host returns the numeric text of the host for IPv4/IPv6 addresses, and an empty string
// for Unix addresses. Formatting is purely numeric: no reverse name lookup is ever
// performed.
func (a Address) Host() string {
	switch a.family {
	case FamilyIPv4, FamilyIPv6:
		return a.ip.String()
	default:
		return ""
	}
}

// Port returns the port of this address. The flag is false for Unix addresses, which carry
// no port.
func (a Address) Port() (Port, bool) {
	switch a.family {
	case FamilyIPv4, FamilyIPv6:
		return a.port, true
	default:
		return 0, false
	}
}

// Path returns the filesystem path for Unix addresses, and an empty string otherwise.
func (a Address) Path() string {
	if a.family == FamilyUnix {
		return a.path
	}

	return ""
}

// String returns "host:port" for IPv4 addresses, "[host]:port" for IPv6 addresses, and the
// filesystem path for Unix addresses.
func (a Address) String() string {
	switch a.family {
	case FamilyIPv4, FamilyIPv6:
		return netip.AddrPortFrom(a.ip, uint16(a.port)).String()
	case FamilyUnix:
		return a.path
	default:
		return ""
	}
}
