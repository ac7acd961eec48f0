// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "any interface", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname is not an IP", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestRegisterClientFlags_Parse(t *testing.T) {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	flags := RegisterClientFlags(fs)

	err := fs.Parse([]string{
		"-u", "https://remote.test/exec",
		"--dsn", "/tmp/kv.db",
		"--request-timeout", "12s",
		"--sync-interval", "2m",
		"--connectivity-interval", "45s",
		"--confirmed-keys", "a,b",
		"--config-key", "cfg",
	})
	require.NoError(t, err)

	cfg := flags.structured()
	assert.Equal(t, "https://remote.test/exec", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/kv.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 45*time.Second, cfg.Workers.ConnectivityInterval)
	assert.Equal(t, []string{"a", "b"}, cfg.App.ConfirmedKeys)
	assert.Equal(t, "cfg", cfg.App.ConfigKey)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestRegisterServerFlags_Parse(t *testing.T) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flags := RegisterServerFlags(fs)

	require.NoError(t, fs.Parse([]string{"-a", "127.0.0.1:9000", "-d", "postgres://x", "-c", "/etc/kv.json"}))

	cfg := flags.structured()
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://x", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/kv.json", cfg.JSONFilePath)
}

func TestRegisterServerFlags_InvalidAddress(t *testing.T) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	RegisterServerFlags(fs)

	assert.Error(t, fs.Parse([]string{"-a", "nonsense"}))
}
