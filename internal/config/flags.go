// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values of every configuration flag registered on a pflag
// set. Unset flags keep their zero value and therefore never shadow lower
// precedence sources.
type Flags struct {
	serverAddress  NetAddress
	adapterAddress string
	databaseDSN    string
	jsonConfigPath string
	requestTimeout time.Duration
	pingTimeout    time.Duration
	syncInterval   time.Duration
	successDisplay time.Duration
	connectivity   time.Duration
	configKey      string
	notesKey       string
	confirmedKeys  []string
	logLevel       string
	logFile        string
}

// RegisterServerFlags binds the remote store flags on fs.
//
// Flags:
//
//	-a/--address         listen address in format [host]:[port]
//	-d/--dsn             PostgreSQL DSN (empty: in-memory store)
//	-c/--config          JSON file path with configs
//	--request-timeout    request timeout (e.g. "30s", "1m")
//	--log-level          zerolog level name
func RegisterServerFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "Database DSN")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level")
	return f
}

// RegisterClientFlags binds the client flags on fs.
//
// Flags:
//
//	-u/--url             initial remote endpoint URL
//	-d/--dsn             SQLite database file
//	-c/--config          JSON file path with configs
//	--request-timeout    request timeout (e.g. "30s")
//	--ping-timeout       connectivity probe timeout
//	--sync-interval      interval applied to fresh sync settings
//	--success-display    how long the success state is shown
//	--connectivity-interval  period of the connectivity probe
//	--config-key         local key of the shared configuration document
//	--notes-key          local key of the notes map
//	--confirmed-keys     extra keys whose Set must be confirmed by the remote
//	--log-level          zerolog level name
//	--log-file           log file path
func RegisterClientFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVarP(&f.adapterAddress, "url", "u", "", "Remote endpoint URL")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "Database file")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&f.pingTimeout, "ping-timeout", 0, "Connectivity probe timeout")
	fs.DurationVar(&f.syncInterval, "sync-interval", 0, "Default sync interval")
	fs.DurationVar(&f.successDisplay, "success-display", 0, "Success state display time")
	fs.DurationVar(&f.connectivity, "connectivity-interval", 0, "Connectivity probe period")
	fs.StringVar(&f.configKey, "config-key", "", "Configuration document key")
	fs.StringVar(&f.notesKey, "notes-key", "", "Notes map key")
	fs.StringSliceVar(&f.confirmedKeys, "confirmed-keys", nil, "Keys whose Set must be confirmed by the remote")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	return f
}

func (f *Flags) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ConfigKey:     f.configKey,
			NotesKey:      f.notesKey,
			ConfirmedKeys: f.confirmedKeys,
			LogLevel:      f.logLevel,
			LogFile:       f.logFile,
		},
		Storage: Storage{
			DB: DB{DSN: f.databaseDSN},
		},
		Server: Server{
			HTTPAddress:    f.serverAddress.String(),
			RequestTimeout: f.requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    f.adapterAddress,
			RequestTimeout: f.requestTimeout,
			PingTimeout:    f.pingTimeout,
		},
		Workers: Workers{
			SyncInterval:         f.syncInterval,
			SuccessDisplay:       f.successDisplay,
			ConnectivityInterval: f.connectivity,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port is set.
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

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
