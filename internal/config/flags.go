package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-runtime-config path to the runtime-injected frontend config
//	-static-dir directory with the built dashboard bundle
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-backend-timeout outbound backend request timeout
//	-probe-interval backend health probe period
//	-log-level minimum log level
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var runtimeConfigPath string
	var staticDir string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var backendTimeout time.Duration
	var probeInterval time.Duration
	var logLevel string

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&runtimeConfigPath, "runtime-config", "", "Runtime-injected frontend config path")
	fs.StringVar(&staticDir, "static-dir", "", "Directory with the built dashboard bundle")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.DurationVar(&backendTimeout, "backend-timeout", 0, "Backend request timeout (e.g., 15s)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Backend health probe period (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			StaticDir:       staticDir,
		},
		Adapter: Adapter{
			RequestTimeout: backendTimeout,
			ProbeInterval:  probeInterval,
		},
		Frontend: Frontend{
			RuntimeConfigPath: runtimeConfigPath,
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
		return errors.New("port number is a positive integer up to 65535")
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
