//go:build !windows

// Package open creates fleetadm config and credential files readable
// only by the current user.
package open

import "os"

// NewSafeFile creates a new empty file with mode 0600, truncating an
// existing one.
func NewSafeFile(filepath string) (*os.File, error) {
	f, err := os.OpenFile(filepath, os.O_TRUNC|os.O_CREATE|os.O_RDWR, os.FileMode(0600))
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(0); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	return f, nil
}
