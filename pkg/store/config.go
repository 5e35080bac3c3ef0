package store

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// Config represents the connection settings of the backing database.
type Config struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
}

// DefaultConfig returns the settings used when only the required
// positional values are supplied.
func DefaultConfig() *Config {
	return &Config{
		Host:     "localhost",
		Port:     5432,
		Database: "postgres",
		User:     "postgres",
		Password: "",
		SSLMode:  "prefer",
	}
}

// ParsePort validates a textual port number.
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid port %q", s)
	}
	return port, nil
}

// ConnectionURL builds the postgres:// URL for the config, password included.
func (c *Config) ConnectionURL() string {
	return c.url(true).String()
}

// DisplayURL is ConnectionURL without the password, safe to print.
func (c *Config) DisplayURL() string {
	return c.url(false).String()
}

func (c *Config) url(withPassword bool) *url.URL {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "prefer"
	}

	port := c.Port
	if port == 0 {
		port = 5432
	}

	host := c.Host
	if host == "" {
		host = "localhost"
	}

	u := &url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	if withPassword && c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}
	return u
}
