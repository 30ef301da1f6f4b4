// Package pattern builds SQL LIKE patterns for literal substring search.
package pattern

import "strings"

// Escape is the escape character paired with Contains in an ESCAPE clause.
const Escape = `\`

var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// Contains returns a LIKE pattern matching any text that contains fragment
// literally. Use it with `LIKE ? ESCAPE '\'`.
func Contains(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}
