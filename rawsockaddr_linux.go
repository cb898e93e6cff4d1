//go:build linux

package netaddr

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// RawSockaddr returns this address as a raw socket address record plus the record's
// occupied length in bytes. The returned record matches the kernel's layout bit-for-bit per
// family: the family discriminant leads, ports are in network byte order, and the record is
// sized to hold the largest variant.
//
// Reinterpretation of raw record bytes is confined to this file; everything else in the
// package operates on the typed Address value.
func (a Address) RawSockaddr() (unix.RawSockaddrAny, int, error) {
	var rsa unix.RawSockaddrAny

	switch a.family {
	case FamilyIPv4:
		rsa4 := (*unix.RawSockaddrInet4)(unsafe.Pointer(&rsa))
		rsa4.Family = unix.AF_INET
		putNetworkOrderPort(&rsa4.Port, a.port)
		rsa4.Addr = a.ip.As4()
		return rsa, unix.SizeofSockaddrInet4, nil

	case FamilyIPv6:
		rsa6 := (*unix.RawSockaddrInet6)(unsafe.Pointer(&rsa))
		rsa6.Family = unix.AF_INET6
		putNetworkOrderPort(&rsa6.Port, a.port)
		rsa6.Addr = a.ip.As16()
		return rsa, unix.SizeofSockaddrInet6, nil

	case FamilyUnix:
		rsaUnix := (*unix.RawSockaddrUnix)(unsafe.Pointer(&rsa))
		rsaUnix.Family = unix.AF_UNIX
		for i := 0; i < len(a.path); i++ {
			rsaUnix.Path[i] = int8(a.path[i])
		}
		return rsa, unix.SizeofSockaddrUnix, nil
	}

	return rsa, 0, errors.Wrapf(ErrUnsupportedFamily, "family %s", a.family)
}

// AddressFromRawSockaddr instantiates an Address from a raw socket address record, such as
// one filled in by getpeername or recvfrom. Records of any family besides IPv4, IPv6, and
// Unix fail with ErrUnsupportedFamily.
func AddressFromRawSockaddr(rsa *unix.RawSockaddrAny) (Address, error) {
	switch rsa.Addr.Family {
	case unix.AF_INET:
		rsa4 := (*unix.RawSockaddrInet4)(unsafe.Pointer(rsa))
		return NewIpv4Address(Ipv4FromBytes(rsa4.Addr), networkOrderPort(&rsa4.Port)), nil

	case unix.AF_INET6:
		rsa6 := (*unix.RawSockaddrInet6)(unsafe.Pointer(rsa))
		return NewIpv6Address(Ipv6From16(rsa6.Addr), networkOrderPort(&rsa6.Port)), nil

	case unix.AF_UNIX:
		rsaUnix := (*unix.RawSockaddrUnix)(unsafe.Pointer(rsa))
		path := make([]byte, 0, len(rsaUnix.Path))
		for _, c := range rsaUnix.Path {
			if c == 0 {
				break
			}
			path = append(path, byte(c))
		}
		return UnixAddress(string(path))
	}

	return Address{}, errors.Wrapf(ErrUnsupportedFamily, "family %d", rsa.Addr.Family)
}

// putNetworkOrderPort stores port into a raw record's in_port_t field, which holds its
// value in network byte order regardless of the host's endianness.
func putNetworkOrderPort(field *uint16, port Port) {
	raw := (*[2]byte)(unsafe.Pointer(field))
	raw[0] = byte(port >> 8)
	raw[1] = byte(port)
}

// networkOrderPort reads a raw record's network byte order in_port_t field.
func networkOrderPort(field *uint16) Port {
	raw := (*[2]byte)(unsafe.Pointer(field))
	return Port(raw[0])<<8 | Port(raw[1])
}
