// Package database manages the SQLite store and its schema.
//
// Repositories for individual aggregates live in sub-packages
// (users, planets, bookings) and share the *gorm.DB handle owned by
// Database.
package database
