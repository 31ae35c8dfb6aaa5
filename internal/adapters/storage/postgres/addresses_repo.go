package postgres

import (
	"context"
	"database/sql"
	"strings"

	"doggo-marketplace/internal/domain/addresses"
)

type AddressesRepo struct {
	db *sql.DB
}

func NewAddressesRepo(db *sql.DB) *AddressesRepo {
	return &AddressesRepo{db: db}
}

func (r *AddressesRepo) Create(ctx context.Context, a addresses.Address) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO addresses (
			id, owner_user_id,
			label, street, city, postal_code,
			is_primary, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.OwnerUserID,
		a.Label,
		a.Street,
		a.City,
		a.PostalCode,
		a.IsPrimary,
		a.Notes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AddressesRepo) Update(ctx context.Context, a addresses.Address) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE addresses
		SET
			label = $2,
			street = $3,
			city = $4,
			postal_code = $5,
			is_primary = $6,
			notes = $7,
			updated_at = $8
		WHERE id = $1
	`,
		a.ID,
		a.Label,
		a.Street,
		a.City,
		a.PostalCode,
		a.IsPrimary,
		a.Notes,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AddressesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AddressesRepo) GetByID(ctx context.Context, id string) (addresses.Address, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return addresses.Address{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			label, street, city, postal_code,
			is_primary, notes,
			created_at, updated_at
		FROM addresses
		WHERE id = $1
	`, id)

	var a addresses.Address
	if err := row.Scan(
		&a.ID,
		&a.OwnerUserID,
		&a.Label,
		&a.Street,
		&a.City,
		&a.PostalCode,
		&a.IsPrimary,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return addresses.Address{}, ErrNotFound
		}
		return addresses.Address{}, err
	}

	return a, nil
}

func (r *AddressesRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]addresses.Address, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			label, street, city, postal_code,
			is_primary, notes,
			created_at, updated_at
		FROM addresses
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]addresses.Address, 0)
	for rows.Next() {
		var a addresses.Address
		if err := rows.Scan(
			&a.ID,
			&a.OwnerUserID,
			&a.Label,
			&a.Street,
			&a.City,
			&a.PostalCode,
			&a.IsPrimary,
			&a.Notes,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}
