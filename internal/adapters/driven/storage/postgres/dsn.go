package postgres

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

var dsnValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// BuildDSN renders settings as a libpq keyword/value connection string.
// Empty options are omitted so the driver defaults (PGHOST, .pgpass, ...) apply.
func BuildDSN(settings domain.DatabaseSettings) string {
	var parts []string
	add := func(key, value string) {
		if value == "" {
			return
		}
		parts = append(parts, key+"="+quoteDSNValue(value))
	}

	add("dbname", settings.Name)
	add("user", settings.User)
	add("host", settings.Host)
	if settings.Port > 0 {
		add("port", strconv.Itoa(settings.Port))
	}
	add("password", settings.Password)

	return strings.Join(parts, " ")
}

// quoteDSNValue single-quotes values containing spaces, quotes or backslashes.
func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	return "'" + dsnValueEscaper.Replace(v) + "'"
}

// RedactDSN returns dsn with any password value masked, for logging.
func RedactDSN(settings domain.DatabaseSettings) string {
	if settings.Password != "" {
		settings.Password = "xxxxx"
	}
	return BuildDSN(settings)
}
