package repository

import (
	"testing"
)

func TestNewDB_InvalidDSN(t *testing.T) {
	db, err := NewDB("not-a-valid-dsn")
	if err == nil {
		db.Close()
		t.Fatal("expected error for invalid DSN")
	}
}
