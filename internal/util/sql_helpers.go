package util

import "database/sql"

// StringToNullString treats "" as NULL.
func StringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// BoolToNumber stores a bool in an Oracle NUMBER(1) column.
func BoolToNumber(b bool) int {
	if b {
		return 1
	}
	return 0
}

