// Package repository wraps all GORM access behind per-entity interfaces so
// services can be unit-tested against in-memory stubs.
//
// Write methods accept an optional *gorm.DB transaction handle: the importer
// and the by-name order paths run several lookups and creates inside one
// transaction (read-your-writes within a batch), while plain CRUD passes nil
// and runs on the root connection.
package repository

import "gorm.io/gorm"

// conn picks the transaction when one is supplied, the root handle otherwise.
func conn(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}
