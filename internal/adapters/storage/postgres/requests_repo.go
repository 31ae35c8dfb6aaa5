package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"doggo-marketplace/internal/domain/dogs"
	"doggo-marketplace/internal/domain/requests"
)

// RequestsRepo guarda los avisos del tablón. El snapshot del perro y la lista
// de servicios van en JSONB, igual que en orders.
type RequestsRepo struct {
	db *sql.DB
}

func NewRequestsRepo(db *sql.DB) *RequestsRepo {
	return &RequestsRepo{db: db}
}

func (r *RequestsRepo) Create(ctx context.Context, req requests.Request) error {
	dogJSON, err := json.Marshal(req.Dog)
	if err != nil {
		return err
	}
	typesJSON, err := json.Marshal(req.ServiceTypes)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO requests (
			id, owner_user_id,
			dog, date, time_slot,
			service_types, price,
			address_id, location_label,
			status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		req.ID,
		req.OwnerUserID,
		dogJSON,
		req.Date,
		req.TimeSlot,
		typesJSON,
		req.Price,
		req.AddressID,
		req.LocationLabel,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)
	return err
}

func (r *RequestsRepo) Update(ctx context.Context, req requests.Request) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE requests
		SET
			status = $2,
			updated_at = $3
		WHERE id = $1
	`,
		req.ID,
		req.Status,
		req.UpdatedAt,
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

func (r *RequestsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

const requestColumns = `
	id, owner_user_id,
	dog, date, time_slot,
	service_types, price,
	address_id, location_label,
	status,
	created_at, updated_at
`

func (r *RequestsRepo) GetByID(ctx context.Context, id string) (requests.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return requests.Request{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)

	req, err := scanRequest(row.Scan)
	if err == sql.ErrNoRows {
		return requests.Request{}, ErrNotFound
	}
	return req, err
}

func (r *RequestsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]requests.Request, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+requestColumns+`
		FROM requests
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRequests(rows)
}

func (r *RequestsRepo) ListOpen(ctx context.Context) ([]requests.Request, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+requestColumns+`
		FROM requests
		WHERE status = $1
		ORDER BY created_at DESC
	`, requests.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRequests(rows)
}

func collectRequests(rows *sql.Rows) ([]requests.Request, error) {
	out := make([]requests.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanRequest(scan func(dest ...any) error) (requests.Request, error) {
	var req requests.Request
	var dogJSON, typesJSON []byte

	if err := scan(
		&req.ID,
		&req.OwnerUserID,
		&dogJSON,
		&req.Date,
		&req.TimeSlot,
		&typesJSON,
		&req.Price,
		&req.AddressID,
		&req.LocationLabel,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return requests.Request{}, err
	}

	var dog dogs.Dog
	if err := json.Unmarshal(dogJSON, &dog); err != nil {
		return requests.Request{}, fmt.Errorf("decode dog snapshot: %w", err)
	}
	req.Dog = dog

	if len(typesJSON) > 0 {
		if err := json.Unmarshal(typesJSON, &req.ServiceTypes); err != nil {
			return requests.Request{}, fmt.Errorf("decode service types: %w", err)
		}
	}

	return req, nil
}
