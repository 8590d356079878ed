// Package planets provides database operations for the exoplanet catalog.
package planets

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/exotravel/exotravel/internal/entities"
)

// Sortable catalog columns. Anything else is rejected before it
// reaches the query builder.
var sortColumns = map[string]string{
	"distance":      "distance",
	"discoveryYear": "discovery_year",
	"name":          "name",
}

// ListQuery describes a catalog page request. Zero values mean
// "no filter"; Page and PageSize must already be validated.
type ListQuery struct {
	Page        int
	PageSize    int
	Query       string   // case-insensitive name substring
	Vibe        string   // case-insensitive exact match
	MinDistance *float64 // light years
	MaxDistance *float64
	Sort        string // distance | discoveryYear | name
	Order       string // asc | desc
}

// SortColumn resolves the requested sort key to a database column,
// defaulting to distance.
func SortColumn(sort string) (string, bool) {
	col, ok := sortColumns[sort]
	if !ok {
		return "distance", false
	}
	return col, true
}

// Repository handles exoplanet catalog queries.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns one catalog page plus the total row count for the
// applied filters.
func (r *Repository) List(q ListQuery) ([]entities.Exoplanet, int64, error) {
	tx := r.db.Model(&entities.Exoplanet{})

	if q.Query != "" {
		tx = tx.Where("name LIKE ? COLLATE NOCASE", "%"+q.Query+"%")
	}
	if q.Vibe != "" {
		tx = tx.Where("vibe = ? COLLATE NOCASE", q.Vibe)
	}
	if q.MinDistance != nil {
		tx = tx.Where("distance >= ?", *q.MinDistance)
	}
	if q.MaxDistance != nil {
		tx = tx.Where("distance <= ?", *q.MaxDistance)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count exoplanets: %w", err)
	}

	column, _ := SortColumn(q.Sort)
	desc := q.Order == "desc"

	var items []entities.Exoplanet
	err := tx.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exoplanets: %w", err)
	}

	return items, total, nil
}

// GetByID retrieves a single planet. Returns (nil, nil) when absent.
func (r *Repository) GetByID(id string) (*entities.Exoplanet, error) {
	var planet entities.Exoplanet
	err := r.db.Where("id = ?", id).First(&planet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find exoplanet: %w", err)
	}
	return &planet, nil
}

// Upsert inserts a planet or updates the existing row with the same
// name, so repeated seed runs stay idempotent.
func (r *Repository) Upsert(planet *entities.Exoplanet) error {
	var existing entities.Exoplanet
	err := r.db.Where("name = ?", planet.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(planet).Error
	}
	if err != nil {
		return err
	}

	planet.ID = existing.ID
	planet.CreatedAt = existing.CreatedAt
	return r.db.Save(planet).Error
}

// Count returns the number of catalog entries.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Exoplanet{}).Count(&count).Error
	return count, err
}
