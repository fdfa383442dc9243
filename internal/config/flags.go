package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress is a flag.Value for listen addresses.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-prototype-address prototype service address in format [host]:[port]
//	-d database DSN
//	-f local upload directory
//	-redis redis URL
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s")
//	-public-url public web app URL
//	-broker realtime broker (memory|redis)
func ParseFlags() *StructuredConfig {
	fs := flag.NewFlagSet("veepo-server", flag.ContinueOnError)

	var serverAddress, prototypeAddress NetAddress
	var databaseDSN, filesDir, redisURL string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var publicURL, broker string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&prototypeAddress, "prototype-address", "Prototype service address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filesDir, "f", "", "Local upload directory")
	fs.StringVar(&redisURL, "redis", "", "Redis URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&publicURL, "public-url", "", "Public web app URL")
	fs.StringVar(&broker, "broker", "", "Realtime broker: memory or redis")

	_ = fs.Parse(commandLineArgs())

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			PublicURL:     publicURL,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{Dir: filesDir},
			Redis: Redis{URL: redisURL},
		},
		Server: Server{
			HTTPAddress:      serverAddress.String(),
			PrototypeAddress: prototypeAddress.String(),
			RequestTimeout:   requestTimeout,
		},
		Realtime:     Realtime{Broker: broker},
		JSONFilePath: jsonConfigPath,
	}
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host may be empty, a name or an IP literal
// (IPv6 in brackets), so container service names work as listen addresses.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", rawPort)
	}

	a.Host = host
	a.Port = port
	return nil
}
