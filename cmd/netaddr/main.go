package main

import (
	"context"
	"os"

	"github.com/perlin-network/netaddr"
	"github.com/perlin-network/netaddr/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	flagFamily   string
	flagSockType string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "netaddr",
		Short:         "Inspect, parse, and resolve socket addresses.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	parseCmd := &cobra.Command{
		Use:   "parse <address>",
		Short: "Parse a textual address such as 127.0.0.1:8080, [::1]:443, or *:80.",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}

	resolveCmd := &cobra.Command{
		Use:   "resolve <host> [service]",
		Short: "Resolve a host and service into candidate socket addresses.",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runResolve,
	}
	resolveCmd.Flags().StringVar(&flagFamily, "family", "", "restrict candidates to one family (inet, inet6)")
	resolveCmd.Flags().StringVar(&flagSockType, "socktype", "", "restrict candidates to one socket type (stream, dgram)")

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Report whether any local interface has an IPv6 address configured.",
		Args:  cobra.NoArgs,
		RunE:  runProbe,
	}

	rootCmd.AddCommand(parseCmd, resolveCmd, probeCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed.")
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	addr, err := netaddr.ParseAddress(args[0])
	if err != nil {
		return err
	}

	event := log.Info().
		Stringer("family", addr.Family()).
		Str("host", addr.Host())

	if port, ok := addr.Port(); ok {
		event = event.Uint16("port", uint16(port))
	}

	event.Msg("Parsed address.")

	return nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	hints, err := parseHints()
	if err != nil {
		return err
	}

	host := args[0]

	service := ""
	if len(args) == 2 {
		service = args[1]
	}

	info, err := netaddr.Resolve(context.Background(), host, service, hints)
	if err != nil {
		return err
	}
	defer info.Close()

	for it := info.Iter(); it.Next(); {
		candidate := it.Candidate()

		log.Info().
			Stringer("family", candidate.Family).
			Stringer("socktype", candidate.SockType).
			Stringer("addr", candidate.Addr).
			Msg("Candidate.")
	}

	return nil
}

func runProbe(cmd *cobra.Command, args []string) error {
	supported, err := netaddr.Ipv6Supported()
	if err != nil {
		return err
	}

	log.Info().Bool("ipv6_supported", supported).Msg("Probed local interfaces.")

	return nil
}

func parseHints() (netaddr.Hints, error) {
	hints := netaddr.Hints{}

	switch flagFamily {
	case "":
	case "inet", "ipv4":
		hints.Family = netaddr.FamilyIPv4
	case "inet6", "ipv6":
		hints.Family = netaddr.FamilyIPv6
	default:
		return hints, errors.Errorf("unknown family %q", flagFamily)
	}

	switch flagSockType {
	case "":
	case "stream", "tcp":
		hints.SockType = netaddr.SockStream
	case "dgram", "udp":
		hints.SockType = netaddr.SockDatagram
	default:
		return hints, errors.Errorf("unknown socket type %q", flagSockType)
	}

	return hints, nil
}
