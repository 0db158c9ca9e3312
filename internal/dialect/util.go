package dialect

import (
	"strings"
)

// GeneratePlaceholders is a helper function to create a comma-separated list
// of placeholder strings, one per index.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// NamedPlaceholder binds a value by its column name (sqlx ":name" syntax).
func NamedPlaceholder(cols []string) func(int) string {
	return func(i int) string {
		return ":" + cols[i]
	}
}
