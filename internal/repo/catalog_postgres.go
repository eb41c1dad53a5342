package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

const (
	entryBrand = "brand"
	entryModel = "model"
)

// PostgresCatalogRepository keeps every catalog value as a row of
// catalog_entries(kind, brand, value), ordered by insertion.
type PostgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) Get() (models.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT kind, brand, value FROM catalog_entries ORDER BY seq`)
	if err != nil {
		return models.Catalog{}, err
	}
	defer rows.Close()

	c := models.NewCatalog()
	for rows.Next() {
		var kind, brand, value string
		if err := rows.Scan(&kind, &brand, &value); err != nil {
			return models.Catalog{}, err
		}
		switch kind {
		case entryBrand:
			c.Brands = append(c.Brands, value)
		case entryModel:
			c.ModelsByBrand[brand] = append(c.ModelsByBrand[brand], value)
		case models.LocationSedes:
			c.Locations.Sedes = append(c.Locations.Sedes, value)
		case models.LocationExterno:
			c.Locations.Externo = append(c.Locations.Externo, value)
		}
	}
	return c, rows.Err()
}

func (r *PostgresCatalogRepository) insert(kind, brand, value string) error {
	query := `INSERT INTO catalog_entries (kind, brand, value) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, kind, brand, value); err != nil {
		return fmt.Errorf("failed to insert catalog entry: %w", err)
	}
	return nil
}

func (r *PostgresCatalogRepository) remove(kind, brand, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM catalog_entries WHERE kind = $1 AND brand = $2 AND value = $3`, kind, brand, value)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCatalogEntryNotFound
	}
	return nil
}

func (r *PostgresCatalogRepository) AddBrand(brand string) error {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return ErrEmptyCatalogValue
	}
	return r.insert(entryBrand, "", brand)
}

func (r *PostgresCatalogRepository) RemoveBrand(brand string) error {
	if err := r.remove(entryBrand, "", brand); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM catalog_entries WHERE kind = $1 AND brand = $2`, entryModel, brand)
	return err
}

func (r *PostgresCatalogRepository) AddModel(brand, model string) error {
	brand, model = strings.TrimSpace(brand), strings.TrimSpace(model)
	if model == "" {
		return ErrEmptyCatalogValue
	}
	if err := r.AddBrand(brand); err != nil {
		return err
	}
	return r.insert(entryModel, brand, model)
}

func (r *PostgresCatalogRepository) RemoveModel(brand, model string) error {
	return r.remove(entryModel, brand, model)
}

func (r *PostgresCatalogRepository) AddLocation(kind, name string) error {
	if kind != models.LocationSedes && kind != models.LocationExterno {
		return ErrInvalidLocationKind
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCatalogValue
	}
	return r.insert(kind, "", name)
}

func (r *PostgresCatalogRepository) RemoveLocation(kind, name string) error {
	if kind != models.LocationSedes && kind != models.LocationExterno {
		return ErrInvalidLocationKind
	}
	return r.remove(kind, "", name)
}
