package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"doggo-marketplace/internal/domain/dogs"
	"doggo-marketplace/internal/domain/orders"
	"doggo-marketplace/internal/domain/walkers"
)

// OrdersRepo guarda las órdenes con los snapshots (perro, paseador, track,
// actividades) en columnas JSONB: son documentos inmutables o append-only,
// no vale la pena normalizarlos.
type OrdersRepo struct {
	db *sql.DB
}

func NewOrdersRepo(db *sql.DB) *OrdersRepo {
	return &OrdersRepo{db: db}
}

func (r *OrdersRepo) Create(ctx context.Context, o orders.Order) error {
	dogJSON, walkerJSON, trackJSON, actsJSON, err := marshalOrderDocs(o)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, owner_user_id,
			dog, walker,
			date, start_time, duration_minutes,
			service_type, status, total_cost,
			gps_track, elapsed_seconds, base_distance_km,
			activities,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		o.ID,
		o.OwnerUserID,
		dogJSON,
		walkerJSON,
		o.Date,
		o.StartTime,
		o.DurationMinutes,
		o.ServiceType,
		o.Status,
		o.TotalCost,
		trackJSON,
		o.ElapsedSeconds,
		o.BaseDistanceKm,
		actsJSON,
		o.CreatedAt,
		o.UpdatedAt,
	)
	return err
}

func (r *OrdersRepo) Update(ctx context.Context, o orders.Order) error {
	_, walkerJSON, trackJSON, actsJSON, err := marshalOrderDocs(o)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET
			walker = $2,
			status = $3,
			total_cost = $4,
			gps_track = $5,
			elapsed_seconds = $6,
			base_distance_km = $7,
			activities = $8,
			updated_at = $9
		WHERE id = $1
	`,
		o.ID,
		walkerJSON,
		o.Status,
		o.TotalCost,
		trackJSON,
		o.ElapsedSeconds,
		o.BaseDistanceKm,
		actsJSON,
		o.UpdatedAt,
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

const orderColumns = `
	id, owner_user_id,
	dog, walker,
	date, start_time, duration_minutes,
	service_type, status, total_cost,
	gps_track, elapsed_seconds, base_distance_km,
	activities,
	created_at, updated_at
`

func (r *OrdersRepo) GetByID(ctx context.Context, id string) (orders.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return orders.Order{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return orders.Order{}, ErrNotFound
	}
	return o, err
}

func (r *OrdersRepo) ListByParticipant(ctx context.Context, userID string) ([]orders.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE owner_user_id = $1 OR walker->>'UserID' = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrdersRepo) ListByDog(ctx context.Context, dogID string) ([]orders.Order, error) {
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE dog->>'ID' = $1
		ORDER BY created_at DESC
	`, dogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows *sql.Rows) ([]orders.Order, error) {
	out := make([]orders.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOrder(scan func(dest ...any) error) (orders.Order, error) {
	var o orders.Order
	var dogJSON, walkerJSON, trackJSON, actsJSON []byte

	if err := scan(
		&o.ID,
		&o.OwnerUserID,
		&dogJSON,
		&walkerJSON,
		&o.Date,
		&o.StartTime,
		&o.DurationMinutes,
		&o.ServiceType,
		&o.Status,
		&o.TotalCost,
		&trackJSON,
		&o.ElapsedSeconds,
		&o.BaseDistanceKm,
		&actsJSON,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return orders.Order{}, err
	}

	var dog dogs.Dog
	if err := json.Unmarshal(dogJSON, &dog); err != nil {
		return orders.Order{}, fmt.Errorf("decode dog snapshot: %w", err)
	}
	o.Dog = dog

	var walker walkers.Profile
	if err := json.Unmarshal(walkerJSON, &walker); err != nil {
		return orders.Order{}, fmt.Errorf("decode walker snapshot: %w", err)
	}
	o.Walker = walker

	if len(trackJSON) > 0 {
		if err := json.Unmarshal(trackJSON, &o.GPSTrack); err != nil {
			return orders.Order{}, fmt.Errorf("decode gps track: %w", err)
		}
	}
	if len(actsJSON) > 0 {
		if err := json.Unmarshal(actsJSON, &o.Activities); err != nil {
			return orders.Order{}, fmt.Errorf("decode activities: %w", err)
		}
	}

	return o, nil
}

func marshalOrderDocs(o orders.Order) (dog, walker, track, acts []byte, err error) {
	if dog, err = json.Marshal(o.Dog); err != nil {
		return nil, nil, nil, nil, err
	}
	if walker, err = json.Marshal(o.Walker); err != nil {
		return nil, nil, nil, nil, err
	}
	if track, err = json.Marshal(o.GPSTrack); err != nil {
		return nil, nil, nil, nil, err
	}
	if acts, err = json.Marshal(o.Activities); err != nil {
		return nil, nil, nil, nil, err
	}
	return dog, walker, track, acts, nil
}
