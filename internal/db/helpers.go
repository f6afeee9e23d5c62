package db

import "database/sql"

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullIntPtr converts an optional headcount to a driver value.
func NullIntPtr(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

// NullInt64Ptr converts an optional money amount to a driver value.
func NullInt64Ptr(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}

// IntPtr maps a scanned nullable integer back to the model pointer.
func IntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

// Int64Ptr maps a scanned nullable integer back to the model pointer.
func Int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// StringPtr maps a scanned nullable string back to the model pointer.
func StringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
