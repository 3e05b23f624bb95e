// Package model contains the GORM models that mirror the local store schema.
package model

import "time"

// StoreEntryModel mirrors the 'store_entries' table, a key/value table that
// holds JSON documents: carts, signed-in session users and order archives.
type StoreEntryModel struct {
	Key       string `gorm:"type:varchar(255);primary_key"`
	Value     []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreEntryModel) TableName() string {
	return "store_entries"
}
