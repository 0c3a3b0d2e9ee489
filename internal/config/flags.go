package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

// NetAddress is a listen address given on the command line as host:port.
// It implements pflag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the command line of the process.
//
// Flags:
//
//	-a, --address               HTTP listen address [host]:port
//	    --grpc-address          gRPC listen address [host]:port
//	-d, --database              store URL (mongodb://, postgres://, sqlite://, memory://)
//	-c, --config                JSON or YAML config file
//	    --request-timeout       per request timeout of the server
//	    --rate-limit            accepted requests per second
//	    --rate-burst            rate limiter burst
//	    --hash-key              HMAC key of the HashSHA256 header
//	-u, --server                notes API base URL used by clients
//	    --adapter-grpc-address  notes gRPC address used by clients
//	    --adapter-timeout       client request timeout
//	    --refresh-interval      client background refresh period
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg                     StructuredConfig
		httpAddress, grpcAddress NetAddress
	)

	fs := pflag.NewFlagSet("notes-keeper", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.VarP(&httpAddress, "address", "a", "HTTP listen address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC listen address host:port")
	fs.StringVarP(&cfg.Storage.DB.DSN, "database", "d", "", "Store URL")
	fs.StringVarP(&cfg.FilePath, "config", "c", "", "JSON or YAML config file path")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&cfg.Server.RateLimit, "rate-limit", 0, "Accepted requests per second, 0 disables")
	fs.IntVar(&cfg.Server.RateBurst, "rate-burst", 0, "Rate limiter burst size")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Security hash key")
	fs.StringVarP(&cfg.Adapter.HTTPAddress, "server", "u", "", "Notes API base URL")
	fs.StringVar(&cfg.Adapter.GRPCAddress, "adapter-grpc-address", "", "Notes gRPC address host:port")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "Background refresh period, 0 disables")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}

// String renders host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host is empty (all interfaces), "localhost"
// or an IP address, and port is in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func (a *NetAddress) Type() string {
	return "host:port"
}
