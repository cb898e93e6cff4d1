//go:build linux

package netaddr_test

import (
	"testing"

	"github.com/perlin-network/netaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestRawSockaddrIpv4Layout(t *testing.T) {
	t.Parallel()

	addr := netaddr.NewIpv4Address(netaddr.Ipv4FromBytes([4]byte{192, 168, 0, 1}), 8080)

	rsa, length, err := addr.RawSockaddr()
	require.NoError(t, err)
	assert.Equal(t, unix.SizeofSockaddrInet4, length)
	assert.EqualValues(t, unix.AF_INET, rsa.Addr.Family)

	back, err := netaddr.AddressFromRawSockaddr(&rsa)
	require.NoError(t, err)
	assert.Equal(t, addr, back)
}

func TestRawSockaddrIpv6Layout(t *testing.T) {
	t.Parallel()

	addr := netaddr.NewIpv6Address(netaddr.Ipv6Loopback(), 443)

	rsa, length, err := addr.RawSockaddr()
	require.NoError(t, err)
	assert.Equal(t, unix.SizeofSockaddrInet6, length)
	assert.EqualValues(t, unix.AF_INET6, rsa.Addr.Family)

	back, err := netaddr.AddressFromRawSockaddr(&rsa)
	require.NoError(t, err)
	assert.Equal(t, addr, back)
}

func TestRawSockaddrPortByteOrder(t *testing.T) {
	t.Parallel()

	// Port 0x1F90 (8080) must land most-significant byte first in the raw record.
	addr := netaddr.NewIpv4Address(netaddr.Ipv4Loopback(), 0x1F90)

	rsa, _, err := addr.RawSockaddr()
	require.NoError(t, err)

	assert.Equal(t, int8(0x1F), rsa.Addr.Data[0])
	assert.Equal(t, int8(-0x70), rsa.Addr.Data[1]) // 0x90 as int8
}

func TestRawSockaddrUnixPath(t *testing.T) {
	t.Parallel()

	addr, err := netaddr.UnixAddress("/run/app.sock")
	require.NoError(t, err)

	rsa, length, err := addr.RawSockaddr()
	require.NoError(t, err)
	assert.Equal(t, unix.SizeofSockaddrUnix, length)
	assert.EqualValues(t, unix.AF_UNIX, rsa.Addr.Family)

	back, err := netaddr.AddressFromRawSockaddr(&rsa)
	require.NoError(t, err)
	assert.Equal(t, "/run/app.sock", back.Path())
}

func TestRawSockaddrUnsupportedFamily(t *testing.T) {
	t.Parallel()

	rsa := unix.RawSockaddrAny{}
	rsa.Addr.Family = unix.AF_NETLINK

	_, err := netaddr.AddressFromRawSockaddr(&rsa)
	assert.ErrorIs(t, err, netaddr.ErrUnsupportedFamily)
}

func TestAddressFromSockaddrUnsupported(t *testing.T) {
	t.Parallel()

	_, err := netaddr.AddressFromSockaddr(&unix.SockaddrLinklayer{})
	assert.ErrorIs(t, err, netaddr.ErrUnsupportedFamily)
}
