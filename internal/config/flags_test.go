package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress ──

func TestNetAddress_String(t *testing.T) {
	tests := map[string]struct {
		addr NetAddress
		want string
	}{
		"unset":        {addr: NetAddress{}, want: ""},
		"all hosts":    {addr: NetAddress{Port: 5000}, want: ":5000"},
		"localhost":    {addr: NetAddress{Host: "localhost", Port: 8080}, want: "localhost:8080"},
		"ipv4":         {addr: NetAddress{Host: "127.0.0.1", Port: 9090}, want: "127.0.0.1:9090"},
		"ipv6":         {addr: NetAddress{Host: "::1", Port: 9090}, want: "[::1]:9090"},
		"host no port": {addr: NetAddress{Host: "localhost"}, want: "localhost:0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	valid := map[string]NetAddress{
		"localhost:8080": {Host: "localhost", Port: 8080},
		":5000":          {Port: 5000},
		"127.0.0.1:9090": {Host: "127.0.0.1", Port: 9090},
		"[::1]:9090":     {Host: "::1", Port: 9090},
		"0.0.0.0:65535":  {Host: "0.0.0.0", Port: 65535},
	}
	for in, want := range valid {
		t.Run(in, func(t *testing.T) {
			var got NetAddress
			require.NoError(t, got.Set(in))
			assert.Equal(t, want, got)
			assert.Equal(t, "host:port", got.Type())
		})
	}

	invalid := map[string]string{
		"":                  "host:port",
		"localhost8080":     "host:port",
		"host:port:extra":   "host:port",
		":":                 "invalid syntax",
		"localhost:abc":     "invalid syntax",
		"localhost:0":       "1..65535",
		"localhost:-1":      "1..65535",
		"localhost:70000":   "1..65535",
		"notes.example:443": "incorrect IP-address",
	}
	for in, wantMsg := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			got := NetAddress{Host: "untouched"}
			err := got.Set(in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), wantMsg)
			assert.Equal(t, "untouched", got.Host)
		})
	}
}

// ── parseFlags ──

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     []string{},
			expected: &StructuredConfig{},
		},
		{
			name: "server flags",
			args: []string{
				"-a", "localhost:5000",
				"--grpc-address", "127.0.0.1:9090",
				"-d", "mongodb://localhost:27017/notesdb",
				"--request-timeout", "15s",
				"--rate-limit", "2.5",
				"--rate-burst=5",
				"--hash-key", "secret",
			},
			expected: &StructuredConfig{
				App:     App{HashKey: "secret"},
				Storage: Storage{DB: DB{DSN: "mongodb://localhost:27017/notesdb"}},
				Server: Server{
					HTTPAddress:    "localhost:5000",
					GRPCAddress:    "127.0.0.1:9090",
					RequestTimeout: 15 * time.Second,
					RateLimit:      2.5,
					RateBurst:      5,
				},
			},
		},
		{
			name: "client flags",
			args: []string{
				"--server", "http://localhost:5000",
				"--adapter-grpc-address", "localhost:9090",
				"--adapter-timeout", "3s",
				"--refresh-interval", "1m",
				"-c", "/etc/notes.yaml",
			},
			expected: &StructuredConfig{
				Adapter: Adapter{
					HTTPAddress:    "http://localhost:5000",
					GRPCAddress:    "localhost:9090",
					RequestTimeout: 3 * time.Second,
				},
				Workers:  Workers{RefreshInterval: time.Minute},
				FilePath: "/etc/notes.yaml",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--token-sign-key", "x"}},
		{name: "bad address", args: []string{"-a", "notes.local:80"}},
		{name: "bad duration", args: []string{"--adapter-timeout", "soon"}},
		{name: "missing value", args: []string{"-d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)

			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
