package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

const uniqueViolation = "23505"

const assetColumns = `id, resguardo, full_name, department, position_title, email, extension,
	location, device_type, brand, model, pc_name, serial_number, ip_address, ip_type, status,
	price, purchase_date, last_mtto, next_mtto, warranty_end_date, warranty`

type PostgresAssetRepository struct {
	db *sql.DB
}

func NewPostgresAssetRepository(db *sql.DB) *PostgresAssetRepository {
	return &PostgresAssetRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (models.Asset, error) {
	var a models.Asset
	var price float64
	err := row.Scan(&a.ID, &a.Resguardo, &a.FullName, &a.Department, &a.Position, &a.Email,
		&a.Extension, &a.Location, &a.DeviceType, &a.Brand, &a.Model, &a.PCName, &a.SerialNumber,
		&a.IPAddress, &a.IPType, &a.Status, &price, &a.PurchaseDate, &a.LastMtto, &a.NextMtto,
		&a.WarrantyEndDate, &a.Warranty)
	a.Price = models.Price(price)
	return a, err
}

func assetArgs(a models.Asset) []any {
	return []any{a.ID, a.Resguardo, a.FullName, a.Department, a.Position, a.Email,
		a.Extension, a.Location, a.DeviceType, a.Brand, a.Model, a.PCName, a.SerialNumber,
		a.IPAddress, a.IPType, a.Status, a.Price.Float64(), a.PurchaseDate, a.LastMtto,
		a.NextMtto, a.WarrantyEndDate, a.Warranty}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (r *PostgresAssetRepository) Create(a models.Asset) (models.Asset, error) {
	a.ID = uuid.NewString()
	query := `INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, assetArgs(a)...); err != nil {
		if isUniqueViolation(err) {
			return models.Asset{}, ErrDuplicatedValueUnique
		}
		return models.Asset{}, err
	}
	return a, nil
}

func (r *PostgresAssetRepository) GetAll() ([]models.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY seq`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []models.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *PostgresAssetRepository) GetByID(id string) (models.Asset, error) {
	return r.getOne(`SELECT `+assetColumns+` FROM assets WHERE id = $1`, id)
}

func (r *PostgresAssetRepository) GetBySerial(serial string) (models.Asset, error) {
	if serial == "" {
		return models.Asset{}, ErrAssetNotFound
	}
	return r.getOne(`SELECT `+assetColumns+` FROM assets WHERE serial_number = $1`, serial)
}

func (r *PostgresAssetRepository) getOne(query string, arg any) (models.Asset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	a, err := scanAsset(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Asset{}, ErrAssetNotFound
	}
	return a, err
}

func (r *PostgresAssetRepository) Update(a models.Asset) (models.Asset, error) {
	query := `UPDATE assets SET resguardo = $2, full_name = $3, department = $4, position_title = $5,
		email = $6, extension = $7, location = $8, device_type = $9, brand = $10, model = $11,
		pc_name = $12, serial_number = $13, ip_address = $14, ip_type = $15, status = $16,
		price = $17, purchase_date = $18, last_mtto = $19, next_mtto = $20,
		warranty_end_date = $21, warranty = $22, updated_at = now()
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, assetArgs(a)...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Asset{}, ErrDuplicatedValueUnique
		}
		return models.Asset{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Asset{}, ErrAssetNotFound
	}
	return a, nil
}

func (r *PostgresAssetRepository) Delete(id string) error {
	query := `DELETE FROM assets WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrAssetNotFound
	}
	return nil
}
