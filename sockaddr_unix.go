//go:build unix

package netaddr

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Sockaddr returns the native socket address record for this address, ready to be handed to
// the operating system's bind/connect/sendto calls by a transport layer.
func (a Address) Sockaddr() (unix.Sockaddr, error) {
	switch a.family {
	case FamilyIPv4:
		return &unix.SockaddrInet4{Port: int(a.port), Addr: a.ip.As4()}, nil
	case FamilyIPv6:
		return &unix.SockaddrInet6{Port: int(a.port), Addr: a.ip.As16()}, nil
	case FamilyUnix:
		return &unix.SockaddrUnix{Name: a.path}, nil
	}

	return nil, errors.Wrapf(ErrUnsupportedFamily, "family %s", a.family)
}

// AddressFromSockaddr instantiates an Address from a native socket address record, such as
// the peer record reported by an accept call. Records of any family besides IPv4, IPv6, and
// Unix fail with ErrUnsupportedFamily.
func AddressFromSockaddr(sa unix.Sockaddr) (Address, error) {
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		return NewIpv4Address(Ipv4FromBytes(sa.Addr), Port(sa.Port)), nil
	case *unix.SockaddrInet6:
		return NewIpv6Address(Ipv6From16(sa.Addr), Port(sa.Port)), nil
	case *unix.SockaddrUnix:
		return UnixAddress(sa.Name)
	}

	return Address{}, errors.Wrapf(ErrUnsupportedFamily, "%T", sa)
}
