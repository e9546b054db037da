package sqlstore

import (
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// adoKeys maps connection-string keys of the "Server=..;Database=.." form to
// the fields they set.
var adoKeys = map[string]string{
	"server":          "host",
	"host":            "host",
	"data source":     "host",
	"datasource":      "host",
	"address":         "host",
	"port":            "port",
	"user":            "user",
	"uid":             "user",
	"user id":         "user",
	"userid":          "user",
	"username":        "user",
	"password":        "password",
	"pwd":             "password",
	"database":        "database",
	"initial catalog": "database",
}

// MySQLDSN normalizes a MySQL connection string into the driver's DSN format.
// Both native DSNs ("user:pass@tcp(host:3306)/db") and key/value strings
// ("Server=host;Port=3306;Database=db;User=u;Password=p") are accepted.
// Timestamps are always parsed, and UPDATE reports matched rather than changed
// rows so that rewriting a task with identical values still counts as a hit.
func MySQLDSN(raw string) (string, error) {
	cfg, err := parseMySQL(raw)
	if err != nil {
		return "", err
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

// Address returns the host part of a connection string for logging. It never
// includes credentials: SQLite paths are returned as is, anything that looks
// like a MySQL connection string is reduced to host:port.
func Address(driver, dsn string) string {
	if driver != DriverMySQL && !IsMySQLConnectionString(dsn) {
		return dsn
	}
	cfg, err := parseMySQL(dsn)
	if err != nil {
		return "unparseable"
	}
	return cfg.Addr
}

func parseMySQL(raw string) (*mysql.Config, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty connection string")
	}
	if !IsKeyValue(raw) {
		cfg, err := mysql.ParseDSN(raw)
		if err != nil {
			return nil, fmt.Errorf("parse mysql dsn: %w", err)
		}
		return cfg, nil
	}

	fields := map[string]string{}
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("malformed connection string segment %q", part)
		}
		name, known := adoKeys[strings.ToLower(strings.TrimSpace(key))]
		if !known {
			continue
		}
		fields[name] = strings.TrimSpace(value)
	}

	if fields["host"] == "" {
		return nil, fmt.Errorf("connection string has no server")
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.User = fields["user"]
	cfg.Passwd = fields["password"]
	cfg.DBName = fields["database"]

	host, port := fields["host"], fields["port"]
	if h, p, err := net.SplitHostPort(host); err == nil {
		host = h
		if port == "" {
			port = p
		}
	}
	if port == "" {
		port = "3306"
	}
	cfg.Addr = net.JoinHostPort(host, port)

	return cfg, nil
}

// IsMySQLConnectionString reports whether raw is a key/value connection string
// or a native DSN carrying credentials, neither of which is a SQLite path.
func IsMySQLConnectionString(raw string) bool {
	if IsKeyValue(raw) {
		return true
	}
	_, err := mysql.ParseDSN(raw)
	return err == nil && strings.Contains(raw, "@")
}

// IsKeyValue reports whether raw looks like "Key=Value;..." rather than a native DSN.
func IsKeyValue(raw string) bool {
	key, _, ok := strings.Cut(raw, "=")
	if !ok {
		return false
	}
	_, known := adoKeys[strings.ToLower(strings.TrimSpace(key))]
	return known
}
