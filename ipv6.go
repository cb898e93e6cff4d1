package netaddr

import (
	"encoding/binary"
	"net"
	"net/netip"

	"github.com/pkg/errors"
)

// Ipv6 is an IPv6 address held as 16 bytes in network byte order. The zero value is the
// unspecified address ::.
type Ipv6 struct {
	octets [16]byte
}

// Ipv6From16 instantiates an IPv6 address from its native 16-byte record. It performs no
// parsing and cannot fail.
func Ipv6From16(b [16]byte) Ipv6 {
	return Ipv6{octets: b}
}

// Ipv6FromGroups instantiates an IPv6 address whose leading 8 bytes are the given 16-bit
// groups converted from host order to network order. The remaining bytes are zero.
func Ipv6FromGroups(groups [4]uint16) Ipv6 {
	var ip Ipv6
	for i, group := range groups {
		binary.BigEndian.PutUint16(ip.octets[2*i:], group)
	}
	return ip
}

// Ipv6FromBytes instantiates an IPv6 address whose leading 8 bytes are copied verbatim from
// b. The remaining bytes are zero.
func Ipv6FromBytes(b [8]byte) Ipv6 {
	var ip Ipv6
	copy(ip.octets[:], b[:])
	return ip
}

// ParseIpv6 parses colon-hex text, including :: compression, into an IPv6 address. The text
// must not be bracketed; brackets are the text-address grammar's concern and are stripped by
// ParseAddress beforehand. It fails with ErrInvalidAddress should the text be malformed, or
// should it denote an address of any other family.
func ParseIpv6(host string) (Ipv6, error) {
	addr, err := netip.ParseAddr(host)
	if err != nil || !addr.Is6() {
		return Ipv6{}, errors.Wrapf(ErrInvalidAddress, "parsing %q as an IPv6 address", host)
	}

	return Ipv6{octets: addr.As16()}, nil
}

// Ipv6Any returns the IPv6 unspecified address ::, which binds to all local interfaces.
func Ipv6Any() Ipv6 {
	return Ipv6{}
}

// Ipv6Loopback returns the IPv6 loopback address ::1.
func Ipv6Loopback() Ipv6 {
	var ip Ipv6
	ip.octets[15] = 1
	return ip
}

// Bytes returns the 16 bytes of this address in network byte order.
func (ip Ipv6) Bytes() [16]byte {
	return ip.octets
}

// String returns the canonical compressed colon-hex representation of this address, without
// brackets.
func (ip Ipv6) String() string {
	return netip.AddrFrom16(ip.octets).String()
}

// Ipv6Supported reports whether at least one local network interface has an IPv6 address
// configured.
//
// This is an approximation of "IPv6 is usable": a link-local address on a single interface
// satisfies it, while nothing is implied about routing or internet-wide IPv6 reachability.
// Callers depend on this lenient behavior, so the check is deliberately not strengthened.
//
// It fails only if enumerating the local interface addresses fails.
func Ipv6Supported() (bool, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return false, errors.Wrap(err, "enumerating interface addresses")
	}

	supported := false

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP == nil {
			continue
		}

		if ipNet.IP.To4() == nil && ipNet.IP.To16() != nil {
			supported = true
		}
	}

	return supported, nil
}
