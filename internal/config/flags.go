package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-public-key token verification key path
//	-private-key token signing key path
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-rate-capacity admission bucket capacity
//	-rate-refill tokens added per refill interval
//	-rate-interval refill interval (e.g., "1m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-insecure-cookie drop the Secure cookie attribute
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var publicKeyPath, privateKeyPath string
	var tokenIssuer string
	var tokenDuration time.Duration
	var rateCapacity, rateRefill int
	var rateInterval time.Duration
	var requestTimeout time.Duration
	var insecureCookie bool
	var logLevel string

	fs := flag.NewFlagSet("zephyr-centrum", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&publicKeyPath, "public-key", "", "RSA public key path")
	fs.StringVar(&privateKeyPath, "private-key", "", "RSA private key path")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.IntVar(&rateCapacity, "rate-capacity", 0, "Admission bucket capacity")
	fs.IntVar(&rateRefill, "rate-refill", 0, "Tokens added per refill interval")
	fs.DurationVar(&rateInterval, "rate-interval", 0, "Refill interval (e.g., 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&insecureCookie, "insecure-cookie", false, "Drop the Secure cookie attribute")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Auth: Auth{
			PublicKeyPath:  publicKeyPath,
			PrivateKeyPath: privateKeyPath,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		RateLimit: RateLimit{
			Capacity:       rateCapacity,
			RefillTokens:   rateRefill,
			RefillInterval: rateInterval,
		},
		Cookie: Cookie{
			Insecure: insecureCookie,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
