package utils

import "database/sql"

// NullStringToStringPtr converts a sql.NullString to a *string.
func NullStringToStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

// StringPtrOrNil returns a pointer to s, or nil when s is empty. Used to map
// blank form fields onto nullable columns.
func StringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
