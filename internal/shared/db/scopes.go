// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"time"

	"gorm.io/gorm"
)

// Paginate limits a query to one page. Non-positive sizes leave the query unbounded.
//
// Example usage:
//
//	db.Model(&Model{}).Scopes(db.Paginate(page, pageSize)).Find(&results)
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}

// DateBetween filters column to the inclusive civil date window. Nil bounds are open.
func DateBetween(column string, from, to *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" <= ?", *to)
		}
		return db
	}
}
