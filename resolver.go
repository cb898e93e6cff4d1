package netaddr

import (
	"context"
	"errors"
	"net"
	"net/netip"

	"github.com/perlin-network/netaddr/log"
)

// SockType restricts resolution to candidates of a single socket type.
type SockType uint8

const (
	// SockAny is the zero socket type and places no restriction: resolution yields one
	// candidate per socket type per resolved address.
	SockAny SockType = iota

	// SockStream selects stream (TCP) candidates.
	SockStream

	// SockDatagram selects datagram (UDP) candidates.
	SockDatagram
)

// String returns the conventional SOCK_* name of this socket type.
func (t SockType) String() string {
	switch t {
	case SockAny:
		return "SOCK_ANY"
	case SockStream:
		return "SOCK_STREAM"
	case SockDatagram:
		return "SOCK_DGRAM"
	}

	return "UNKNOWN"
}

// Hints constrain a resolution call. The zero value places no restriction on either the
// address family or the socket type.
type Hints struct {
	Family   Family
	SockType SockType
}

// Candidate is a single resolved endpoint: an address plus the family and socket type
// metadata a caller needs to open a matching socket for it.
type Candidate struct {
	Family   Family
	SockType SockType
	Addr     Address
}

// AddrInfo is the owner of the candidate list produced by a single Resolve call.
//
// Ownership is exclusive and transferable: Take moves the list to a new handle and leaves
// the source empty, and whichever handle owns the list when Close is first called performs
// the one and only release. A handle must not be shared between goroutines without external
// synchronization; distinct handles are independent.
type AddrInfo struct {
	candidates []Candidate
	release    func()
}

func newAddrInfo(candidates []Candidate, release func()) *AddrInfo {
	return &AddrInfo{candidates: candidates, release: release}
}

// Len returns the number of resolved candidates.
func (ai *AddrInfo) Len() int {
	return len(ai.candidates)
}

// Iter returns a fresh forward-only cursor over the candidates. The cursor borrows from
// this handle and is valid only until the handle is closed or transferred; iterating twice
// with two fresh cursors yields the same sequence both times.
func (ai *AddrInfo) Iter() *AddrIter {
	return &AddrIter{candidates: ai.candidates, index: -1}
}

// Take transfers ownership of the candidate list to a newly returned handle. The receiver
// is left empty: closing it afterwards performs no release, and cursors borrowed from it
// beforehand are invalidated.
func (ai *AddrInfo) Take() *AddrInfo {
	moved := &AddrInfo{candidates: ai.candidates, release: ai.release}
	ai.candidates = nil
	ai.release = nil
	return moved
}

// Close releases the candidate list. Only the first call on the owning handle releases;
// further calls, and calls on an empty or transferred-from handle, do nothing.
func (ai *AddrInfo) Close() error {
	if ai == nil {
		return nil
	}

	release := ai.release
	ai.release = nil
	ai.candidates = nil

	if release != nil {
		release()
	}

	return nil
}

// AddrIter is a read-only forward cursor over an AddrInfo's candidates. It borrows and
// never owns: the owning AddrInfo must stay alive and unmodified while the cursor is in
// use.
type AddrIter struct {
	candidates []Candidate
	index      int
}

// Next advances the cursor to the next candidate, returning false once the sequence is
// exhausted.
func (it *AddrIter) Next() bool {
	if it.index+1 >= len(it.candidates) {
		return false
	}

	it.index++
	return true
}

// Candidate returns the candidate the cursor is positioned on. It must only be called
// after a Next call that returned true.
func (it *AddrIter) Candidate() Candidate {
	return it.candidates[it.index]
}

// Resolve invokes name/service resolution exactly once and returns the owning handle over
// the resolved candidates.
//
// An empty host yields wildcard (bind-ready) any-address candidates for the hinted
// families. A host that is an IP literal never reaches the resolver. Anything else is
// looked up through the operating system's resolver, which blocks for as long as the lookup
// takes: callers on latency-sensitive paths should call Resolve from a dedicated worker
// rather than from event dispatch. No retries are attempted at this layer.
//
// The service may be empty (port 0), a decimal port numeral, or a service name looked up in
// the system's service database. Failures are reported as a *ResolutionError carrying a
// non-zero code.
func Resolve(ctx context.Context, host, service string, hints Hints) (*AddrInfo, error) {
	if hints.Family == FamilyUnix {
		return nil, &ResolutionError{Code: CodeFamily, Host: host, Service: service}
	}

	port, err := resolveService(ctx, service, hints.SockType)
	if err != nil {
		return nil, err
	}

	addrs, err := resolveHost(ctx, host, service, hints.Family)
	if err != nil {
		return nil, err
	}

	sockTypes := []SockType{hints.SockType}
	if hints.SockType == SockAny {
		sockTypes = []SockType{SockStream, SockDatagram}
	}

	candidates := make([]Candidate, 0, len(addrs)*len(sockTypes))

	for _, addr := range addrs {
		var (
			family  Family
			address Address
		)

		if addr.Is4() {
			family = FamilyIPv4
			address = NewIpv4Address(Ipv4FromBytes(addr.As4()), port)
		} else {
			family = FamilyIPv6
			address = NewIpv6Address(Ipv6From16(addr.As16()), port)
		}

		for _, sockType := range sockTypes {
			candidates = append(candidates, Candidate{Family: family, SockType: sockType, Addr: address})
		}
	}

	log.Debug().
		Str("host", host).
		Str("service", service).
		Int("candidates", len(candidates)).
		Msg("Resolved address candidates.")

	return newAddrInfo(candidates, func() {}), nil
}

// resolveService maps service text to a port: empty means port 0, decimal numerals are
// taken verbatim, anything else goes through the system's service database for the hinted
// socket type.
func resolveService(ctx context.Context, service string, sockType SockType) (Port, error) {
	if service == "" {
		return 0, nil
	}

	if port, err := parsePort(service); err == nil {
		return port, nil
	}

	network := "tcp"
	if sockType == SockDatagram {
		network = "udp"
	}

	port, err := net.DefaultResolver.LookupPort(ctx, network, service)
	if err != nil {
		return 0, &ResolutionError{Code: CodeService, Service: service, Err: err}
	}

	return Port(port), nil
}

// resolveHost produces the resolved addresses for host under the family restriction:
// wildcard addresses for an empty host, the literal itself for IP literals, and a resolver
// lookup otherwise.
func resolveHost(ctx context.Context, host, service string, family Family) ([]netip.Addr, error) {
	if host == "" {
		switch family {
		case FamilyIPv4:
			return []netip.Addr{netip.IPv4Unspecified()}, nil
		case FamilyIPv6:
			return []netip.Addr{netip.IPv6Unspecified()}, nil
		default:
			return []netip.Addr{netip.IPv4Unspecified(), netip.IPv6Unspecified()}, nil
		}
	}

	if literal, err := netip.ParseAddr(host); err == nil {
		literal = literal.Unmap()

		if family == FamilyIPv4 && !literal.Is4() || family == FamilyIPv6 && !literal.Is6() {
			return nil, &ResolutionError{Code: CodeFamily, Host: host, Service: service}
		}

		return []netip.Addr{literal}, nil
	}

	network := "ip"
	switch family {
	case FamilyIPv4:
		network = "ip4"
	case FamilyIPv6:
		network = "ip6"
	}

	addrs, err := net.DefaultResolver.LookupNetIP(ctx, network, host)
	if err != nil {
		return nil, &ResolutionError{Code: classifyLookupErr(err), Host: host, Service: service, Err: err}
	}

	if len(addrs) == 0 {
		return nil, &ResolutionError{Code: CodeNoName, Host: host, Service: service}
	}

	for i := range addrs {
		addrs[i] = addrs[i].Unmap()
	}

	return addrs, nil
}

// classifyLookupErr maps a resolver failure onto the resolution code taxonomy.
func classifyLookupErr(err error) ResolutionCode {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		switch {
		case dnsErr.IsNotFound:
			return CodeNoName
		case dnsErr.IsTimeout, dnsErr.IsTemporary:
			return CodeTemporary
		}
	}

	return CodeSystem
}
