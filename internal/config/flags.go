// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

func flagArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a                 server listen address host:port
//	-d                 database DSN
//	-c / -config       JSON config file path
//	-request-timeout   server request timeout (e.g. "30s")
//	-timezone          IANA timezone for calendar days
//	-auth-mode         provider | jwt
//	-token-sign-key    HS256 key for jwt auth mode
//	-llm-url           chat-completion endpoint
//	-llm-model         model name
//	-image-host        cloudinary | inline
//	-server            server root URL used by the terminal client
//	-local-dsn         client SQLite cache DSN
//	-refresh-interval  client refresh interval (e.g. "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("plant-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var requestTimeout, refreshInterval time.Duration
	var timezone, authMode, tokenSignKey string
	var llmURL, llmModel, imageHost string
	var adapterAddress, localDSN string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&timezone, "timezone", "", "IANA timezone defining calendar days")
	fs.StringVar(&authMode, "auth-mode", "", "Auth mode: provider or jwt")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key for jwt auth mode")
	fs.StringVar(&llmURL, "llm-url", "", "Chat-completion endpoint URL")
	fs.StringVar(&llmModel, "llm-model", "", "Chat-completion model")
	fs.StringVar(&imageHost, "image-host", "", "Image host: cloudinary or inline")
	fs.StringVar(&adapterAddress, "server", "", "Server root URL for the terminal client")
	fs.StringVar(&localDSN, "local-dsn", "", "Client SQLite cache DSN")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Client refresh interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Timezone:     timezone,
			AuthMode:     authMode,
			TokenSignKey: tokenSignKey,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Local: Local{DSN: localDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		LLM: LLM{
			URL:   llmURL,
			Model: llmModel,
		},
		ImageHost: ImageHost{
			Provider: imageHost,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
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

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
