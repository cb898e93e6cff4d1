package netaddr_test

import (
	"context"
	"testing"

	"github.com/perlin-network/netaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLiteralHost(t *testing.T) {
	t.Parallel()

	info, err := netaddr.Resolve(context.Background(), "127.0.0.1", "8080", netaddr.Hints{})
	require.NoError(t, err)
	defer info.Close()

	// One stream and one datagram candidate for the single literal address.
	assert.Equal(t, 2, info.Len())

	it := info.Iter()

	require.True(t, it.Next())
	first := it.Candidate()
	assert.Equal(t, netaddr.FamilyIPv4, first.Family)
	assert.Equal(t, netaddr.SockStream, first.SockType)
	assert.Equal(t, "127.0.0.1:8080", first.Addr.String())

	require.True(t, it.Next())
	second := it.Candidate()
	assert.Equal(t, netaddr.SockDatagram, second.SockType)
	assert.Equal(t, "127.0.0.1:8080", second.Addr.String())

	assert.False(t, it.Next())
}

func TestResolveIterateTwice(t *testing.T) {
	t.Parallel()

	info, err := netaddr.Resolve(context.Background(), "::1", "443", netaddr.Hints{SockType: netaddr.SockStream})
	require.NoError(t, err)
	defer info.Close()

	var first, second []netaddr.Candidate

	for it := info.Iter(); it.Next(); {
		first = append(first, it.Candidate())
	}
	for it := info.Iter(); it.Next(); {
		second = append(second, it.Candidate())
	}

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestResolveWildcardHost(t *testing.T) {
	t.Parallel()

	info, err := netaddr.Resolve(context.Background(), "", "80", netaddr.Hints{
		Family:   netaddr.FamilyIPv4,
		SockType: netaddr.SockStream,
	})
	require.NoError(t, err)
	defer info.Close()

	require.Equal(t, 1, info.Len())

	it := info.Iter()
	require.True(t, it.Next())
	assert.Equal(t, "0.0.0.0:80", it.Candidate().Addr.String())
}

func TestResolveNamedService(t *testing.T) {
	t.Parallel()

	info, err := netaddr.Resolve(context.Background(), "127.0.0.1", "http", netaddr.Hints{SockType: netaddr.SockStream})
	require.NoError(t, err)
	defer info.Close()

	it := info.Iter()
	require.True(t, it.Next())

	port, ok := it.Candidate().Addr.Port()
	assert.True(t, ok)
	assert.Equal(t, netaddr.Port(80), port)
}

func TestResolveUnresolvableHost(t *testing.T) {
	t.Parallel()

	// The .invalid TLD is reserved to never resolve.
	_, err := netaddr.Resolve(context.Background(), "host.invalid", "80", netaddr.Hints{})
	require.Error(t, err)

	var resErr *netaddr.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.NotZero(t, resErr.Code)
	assert.Equal(t, "host.invalid", resErr.Host)
	assert.Contains(t, err.Error(), "address resolution failed")
}

func TestResolveFamilyMismatch(t *testing.T) {
	t.Parallel()

	_, err := netaddr.Resolve(context.Background(), "::1", "80", netaddr.Hints{Family: netaddr.FamilyIPv4})
	require.Error(t, err)

	var resErr *netaddr.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, netaddr.CodeFamily, resErr.Code)
}

func TestResolveUnknownService(t *testing.T) {
	t.Parallel()

	_, err := netaddr.Resolve(context.Background(), "127.0.0.1", "no-such-service-zzz", netaddr.Hints{})
	require.Error(t, err)

	var resErr *netaddr.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, netaddr.CodeService, resErr.Code)
}

func TestResolveUnixFamilyHint(t *testing.T) {
	t.Parallel()

	_, err := netaddr.Resolve(context.Background(), "127.0.0.1", "80", netaddr.Hints{Family: netaddr.FamilyUnix})
	require.Error(t, err)

	var resErr *netaddr.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, netaddr.CodeFamily, resErr.Code)
}

func TestSockTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SOCK_ANY", netaddr.SockAny.String())
	assert.Equal(t, "SOCK_STREAM", netaddr.SockStream.String())
	assert.Equal(t, "SOCK_DGRAM", netaddr.SockDatagram.String())
}
