package netaddr

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseAddress parses a textual socket address of the form "host:port", "[host]:port", or
// "*:port" into an IP-family Address.
//
// The last colon of the text is the port separator. This disambiguates IPv6 literals, which
// contain colons of their own, under one grammar contract: an IPv6 host must always be
// bracketed, so its closing bracket precedes the port separator. An unbracketed host is
// parsed as dotted-decimal IPv4, with the literal "*" meaning the IPv4 wildcard address.
//
// It fails with ErrInvalidPort should the port segment not be a clean decimal numeral
// within [0, 65535], and with ErrInvalidAddress should the host segment be malformed.
func ParseAddress(addr string) (Address, error) {
	hostText, portText, err := splitHostPort(addr)
	if err != nil {
		return Address{}, err
	}

	port, err := parsePort(portText)
	if err != nil {
		return Address{}, err
	}

	if literal, ok := bracketedHost(hostText); ok {
		ip, err := ParseIpv6(literal)
		if err != nil {
			return Address{}, err
		}

		return NewIpv6Address(ip, port), nil
	}

	if hostText == "*" {
		return NewIpv4Address(Ipv4Any(), port), nil
	}

	ip, err := ParseIpv4(hostText)
	if err != nil {
		return Address{}, err
	}

	return NewIpv4Address(ip, port), nil
}

// splitHostPort splits addr into host and port text at the last colon. The port separator
// must exist, though either side may still be empty.
func splitHostPort(addr string) (host, port string, err error) {
	i := strings.LastIndexByte(addr, ':')
	if i < 0 {
		return "", "", errors.Wrapf(ErrInvalidAddress, "missing port separator in %q", addr)
	}

	return addr[:i], addr[i+1:], nil
}

// bracketedHost reports whether host is a bracketed IPv6 literal, and returns the text
// between the brackets.
func bracketedHost(host string) (string, bool) {
	if len(host) >= 2 && host[0] == '[' && host[len(host)-1] == ']' {
		return host[1 : len(host)-1], true
	}

	return "", false
}

// parsePort parses port text as an unsigned decimal numeral within [PortMin, PortMax]. Sign
// characters, spaces, and trailing junk are all malformed.
func parsePort(text string) (Port, error) {
	value, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPort, "parsing %q", text)
	}

	return Port(value), nil
}
