package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a flag.Value for "host:port" listen addresses. The host may
// be empty (all interfaces), "localhost" or an IP literal.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address provided: %q", host)
	}

	a.Host, a.Port = host, port
	return nil
}

// parseFlags reads the command line into a partial config. Unset flags
// leave zero values so mergo can fill them from other sources.
//
// Server:
//
//	-a, -grpc-address       listen addresses
//	-d                      catalog DSN (postgres URL or sqlite file)
//	-qr-dir                 directory for generated QR codes
//	-c, -config             JSON config file
//	-token-sign-key, -token-issuer, -token-duration
//	-request-timeout        per-request handler timeout
//	-hash-key               HashSHA256 response signing key
//	-ledger-driver          ethereum or local
//	-ledger-endpoint, -contract-address, -from-account, -ledger-path
//	-reconcile-interval, -health-interval
//
// Client:
//
//	-server                 provenance server base address
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg                 StructuredConfig
		httpAddr, grpcAddr  NetAddress
		fs                  = flag.NewFlagSet("provenance", flag.ContinueOnError)
		app, ledger, server = &cfg.App, &cfg.Ledger, &cfg.Server
	)

	fs.Var(&httpAddr, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC health listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "catalog database DSN")
	fs.StringVar(&cfg.Storage.Files.QRDir, "qr-dir", "", "QR code directory")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")

	fs.StringVar(&app.TokenSignKey, "token-sign-key", "", "session token signing key")
	fs.StringVar(&app.TokenIssuer, "token-issuer", "", "session token issuer")
	fs.DurationVar(&app.TokenDuration, "token-duration", 0, "session lifetime, e.g. 15m")
	fs.StringVar(&app.HashKey, "hash-key", "", "response signing key")
	fs.DurationVar(&server.RequestTimeout, "request-timeout", 0, "handler timeout, e.g. 30s")

	fs.StringVar(&ledger.Driver, "ledger-driver", "", "ledger backend: ethereum or local")
	fs.StringVar(&ledger.Endpoint, "ledger-endpoint", "", "ledger JSON-RPC endpoint")
	fs.StringVar(&ledger.ContractAddress, "contract-address", "", "product registry contract address")
	fs.StringVar(&ledger.FromAccount, "from-account", "", "submitting ledger account")
	fs.StringVar(&ledger.LocalPath, "ledger-path", "", "local ledger file")

	fs.DurationVar(&cfg.Workers.ReconcileInterval, "reconcile-interval", 0, "reconciliation period, 0 disables")
	fs.DurationVar(&cfg.Workers.HealthInterval, "health-interval", 0, "ledger health check period, 0 disables")

	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "server address used by the client")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	server.HTTPAddress = httpAddr.String()
	server.GRPCAddress = grpcAddr.String()

	return &cfg, nil
}
