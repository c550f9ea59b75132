package appconf

import (
	"fmt"
	"log/slog"
	"net/netip"
	"strings"
)

// Config holds the process-level settings for the dashboard server. Dataset
// contract settings (series names, year filters) live in Dataset.
type Config struct {
	Port      int
	Env       Environment
	LogLevel  string
	LogFormat string
	// RateLimit is the number of requests per second allowed per client.
	RateLimit int
	DataPath  string
	// TrustedProxies lists the proxy addresses, single IPs or CIDR ranges,
	// whose X-Forwarded-For header is believed. Empty means the client is
	// always the connection's remote address.
	TrustedProxies []string
}

func DefaultConfig() Config {
	return Config{
		Port:      4000,
		Env:       Development,
		LogLevel:  "info",
		LogFormat: "text",
		RateLimit: 50,
		DataPath:  "world_bank_data.csv",
	}
}

// SlogLevel maps LogLevel onto an slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.DataPath == "" {
		return fmt.Errorf("data path is required")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative, got %d", c.RateLimit)
	}
	if _, err := ParseTrustedProxies(c.TrustedProxies); err != nil {
		return err
	}
	return nil
}

// TrustedProxyPrefixes is TrustedProxies parsed, skipping entries Validate
// would reject.
func (c Config) TrustedProxyPrefixes() []netip.Prefix {
	var prefixes []netip.Prefix
	for _, entry := range c.TrustedProxies {
		if p, err := parseProxy(entry); err == nil {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}

// ParseTrustedProxies parses single addresses and CIDR ranges into prefixes.
func ParseTrustedProxies(entries []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		p, err := parseProxy(entry)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", entry, err)
		}
		prefixes = append(prefixes, p)
	}
	return prefixes, nil
}

func parseProxy(entry string) (netip.Prefix, error) {
	entry = strings.TrimSpace(entry)
	if strings.Contains(entry, "/") {
		p, err := netip.ParsePrefix(entry)
		if err != nil {
			return netip.Prefix{}, err
		}
		return p.Masked(), nil
	}
	addr, err := netip.ParseAddr(entry)
	if err != nil {
		return netip.Prefix{}, err
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}
