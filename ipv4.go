package netaddr

import (
	"encoding/binary"
	"net/netip"

	"github.com/pkg/errors"
)

// Ipv4 is an IPv4 address held as 4 bytes in network byte order. The zero value is the
// wildcard address 0.0.0.0.
type Ipv4 struct {
	octets [4]byte
}

// Ipv4FromUint32 instantiates an IPv4 address from its numeric value. The value is stored
// most-significant byte first, so that 0x7f000001 yields 127.0.0.1.
func Ipv4FromUint32(addr uint32) Ipv4 {
	var ip Ipv4
	binary.BigEndian.PutUint32(ip.octets[:], addr)
	return ip
}

// Ipv4FromBytes instantiates an IPv4 address from 4 bytes, where b[0] is the leading octet
// of the dotted-decimal form. It performs no parsing and cannot fail.
func Ipv4FromBytes(b [4]byte) Ipv4 {
	return Ipv4{octets: b}
}

// ParseIpv4 parses dotted-decimal text into an IPv4 address. It fails with ErrInvalidAddress
// should the text be malformed, or should it denote an address of any other family.
func ParseIpv4(host string) (Ipv4, error) {
	addr, err := netip.ParseAddr(host)
	if err != nil || !addr.Is4() {
		return Ipv4{}, errors.Wrapf(ErrInvalidAddress, "parsing %q as an IPv4 address", host)
	}

	return Ipv4{octets: addr.As4()}, nil
}

// Ipv4Any returns the IPv4 wildcard address 0.0.0.0, which binds to all local interfaces.
func Ipv4Any() Ipv4 {
	return Ipv4{}
}

// Ipv4Loopback returns the IPv4 loopback address 127.0.0.1.
func Ipv4Loopback() Ipv4 {
	return Ipv4FromUint32(0x7f000001)
}

// Bytes returns the 4 bytes of this address in network byte order.
func (ip Ipv4) Bytes() [4]byte {
	return ip.octets
}

// Uint32 returns the numeric value of this address, most-significant byte first.
func (ip Ipv4) Uint32() uint32 {
	return binary.BigEndian.Uint32(ip.octets[:])
}

// String returns the canonical dotted-decimal representation of this address. Addresses
// round-trip: for any 4 bytes, ParseIpv4(Ipv4FromBytes(b).String()) recovers the same bytes.
func (ip Ipv4) String() string {
	return netip.AddrFrom4(ip.octets).String()
}
