package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// parseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-max-conns connection pool capacity
//	-acquire-timeout how long a unit of work waits for a connection (e.g. "5s")
//	-workers blocking worker pool size
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-read-timeout request read timeout (e.g., "10s")
//	-write-timeout response write timeout (e.g., "30s")
//	-realm realm of the WWW-Authenticate challenge
//	-expose-not-found answer 404 instead of 500 for a missing user
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var maxConns int
	var acquireTimeout time.Duration
	var workers int
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var readTimeout time.Duration
	var writeTimeout time.Duration
	var realm string
	var exposeNotFound bool
	var logLevel string

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&maxConns, "max-conns", 0, "Connection pool capacity")
	fs.DurationVar(&acquireTimeout, "acquire-timeout", 0, "Connection acquire timeout (e.g., 5s)")
	fs.IntVar(&workers, "workers", 0, "Blocking worker pool size")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Request read timeout (e.g., 10s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Response write timeout (e.g., 30s)")
	fs.StringVar(&realm, "realm", "", "Bearer challenge realm")
	fs.BoolVar(&exposeNotFound, "expose-not-found", false, "Answer 404 for a missing user")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				MaxOpenConns:   maxConns,
				AcquireTimeout: acquireTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			ReadTimeout:    readTimeout,
			WriteTimeout:   writeTimeout,
			AuthRealm:      realm,
			ExposeNotFound: exposeNotFound,
		},
		Workers: Workers{
			BlockingPoolSize: workers,
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

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
