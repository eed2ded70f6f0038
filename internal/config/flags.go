package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-crud-service-url company CRUD service base URL
//	-user-service-url user service base URL
//	-incident-service-url incident-query service base URL
//	-token-sign-key token signing key
//	-token-algorithm token signing algorithm name
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-downstream-timeout downstream call timeout (e.g., "15s")
func ParseFlags() *GatewayConfig {
	var serverAddress NetAddress
	var companyServiceURL string
	var userServiceURL string
	var incidentServiceURL string
	var tokenSignKey string
	var tokenAlgorithm string
	var requestTimeout time.Duration
	var downstreamTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&companyServiceURL, "crud-service-url", "", "Company CRUD service base URL")
	flag.StringVar(&userServiceURL, "user-service-url", "", "User service base URL")
	flag.StringVar(&incidentServiceURL, "incident-service-url", "", "Incident-query service base URL")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenAlgorithm, "token-algorithm", "", "Token signing algorithm name")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&downstreamTimeout, "downstream-timeout", 0, "Downstream call timeout (e.g., 15s)")

	flag.Parse()

	return &GatewayConfig{
		App: App{
			TokenSignKey:   tokenSignKey,
			TokenAlgorithm: tokenAlgorithm,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Downstream: Downstream{
			CompanyServiceURL:  companyServiceURL,
			UserServiceURL:     userServiceURL,
			IncidentServiceURL: incidentServiceURL,
			Timeout:            downstreamTimeout,
		},
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// merge step can fall through to the next configuration source.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
