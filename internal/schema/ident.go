package schema

import (
	"fmt"
	"regexp"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// ValidIdentifier reports whether s can be spliced into SQL as an unquoted
// table or column name.
func ValidIdentifier(s string) bool {
	return identPattern.MatchString(s)
}

// CheckIdentifiers validates the table name and every column name. Table and
// column names are interpolated into DDL and INSERT statements, so callers
// feeding untrusted files should run this first.
func CheckIdentifiers(t *Table) error {
	if !ValidIdentifier(t.Name) {
		return fmt.Errorf("%w: invalid table name %q", ErrMalformedInput, t.Name)
	}
	for _, c := range t.Columns {
		if !ValidIdentifier(c.Name) {
			return fmt.Errorf("%w: table %s: invalid column name %q", ErrMalformedInput, t.Name, c.Name)
		}
	}
	return nil
}
