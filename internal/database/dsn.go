package database

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var sslModeParams = []struct{ from, to string }{
	{"ssl-mode=REQUIRED", "tls=skip-verify"},
	{"ssl-mode=DISABLED", "tls=false"},
	{"ssl-mode=VERIFY_CA", "tls=true"},
	{"ssl-mode=VERIFY_IDENTITY", "tls=true"},
	{"sslmode=require", "tls=skip-verify"},
	{"sslmode=disable", "tls=false"},
	{"sslmode=verify-ca", "tls=true"},
	{"sslmode=verify-full", "tls=true"},
}

// MySQLDSN converts a mysql:// URL into a go-sql-driver DSN. Plain DSNs pass
// through. The result is validated and always parses DATE columns as time.
func MySQLDSN(url string) (string, error) {
	dsn := url
	if strings.HasPrefix(url, "mysql://") {
		dsn = strings.TrimPrefix(url, "mysql://")

		if at := strings.LastIndex(dsn, "@"); at > 0 {
			credentials := dsn[:at]
			remainder := dsn[at+1:]

			if slash := strings.Index(remainder, "/"); slash > 0 {
				hostPort := remainder[:slash]
				dbAndParams := remainder[slash+1:]
				for _, p := range sslModeParams {
					dbAndParams = strings.ReplaceAll(dbAndParams, p.from, p.to)
				}
				dsn = fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
			}
		}
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid MySQL DSN: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// SQLitePath strips a sqlite:// scheme and adds WAL settings when the
// URL carries no parameters of its own.
func SQLitePath(url string) string {
	path := strings.TrimPrefix(url, "sqlite://")
	path = strings.TrimPrefix(path, "sqlite3://")
	if path == ":memory:" || strings.Contains(path, "?") {
		return path
	}
	return path + "?_journal_mode=WAL&_busy_timeout=5000"
}
