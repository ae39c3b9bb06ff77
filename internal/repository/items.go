package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"itemsapi/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Item is the persisted record shape.
// The id is generated by the server at creation and never changes;
// updated_at is refreshed on every mutation.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// List paging bounds. Out-of-range values are clamped here regardless of
// what the HTTP layer accepted.
const (
	ListDefaultLimit = 50
	ListMaxLimit     = 200
)

// ItemRepository is the persistence capability for items.
//
// Read methods report an absent row as (nil, nil); callers decide what
// absence means (the HTTP layer maps it to 404). Exactly one production
// implementation exists (Postgres); an in-memory implementation backs
// the tests.
type ItemRepository interface {
	Create(ctx context.Context, name, description string) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, limit, offset int, q string) ([]Item, error)
	Update(ctx context.Context, id string, name, description *string) (*Item, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PostgresItemRepository implements ItemRepository with raw SQL over pgx.
// Queries run on the per-request transaction when one is in context,
// otherwise directly on the pool.
type PostgresItemRepository struct {
	db *database.Database
}

func NewPostgresItemRepository(db *database.Database) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

const itemColumns = "id, name, description, created_at, updated_at"

func scanItem(row pgx.Row) (*Item, error) {
	var item Item
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresItemRepository) Create(ctx context.Context, name, description string) (*Item, error) {
	// Same instant for both timestamps, so created_at == updated_at holds
	// on a fresh row.
	now := time.Now().UTC()

	row := r.db.Querier(ctx).QueryRow(ctx,
		`insert into items (id, name, description, created_at, updated_at)
		 values ($1, $2, $3, $4, $4)
		 returning `+itemColumns,
		uuid.NewString(), name, description, now,
	)
	return scanItem(row)
}

func (r *PostgresItemRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	row := r.db.Querier(ctx).QueryRow(ctx,
		`select `+itemColumns+` from items where id = $1`, id)

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

func (r *PostgresItemRepository) List(ctx context.Context, limit, offset int, q string) ([]Item, error) {
	if limit < 1 {
		limit = ListDefaultLimit
	}
	if limit > ListMaxLimit {
		limit = ListMaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	query := `select ` + itemColumns + ` from items`
	args := []any{}
	if q != "" {
		query += ` where name ilike $1 or description ilike $1`
		args = append(args, "%"+q+"%")
	}
	query += fmt.Sprintf(` order by created_at desc limit $%d offset $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0, limit)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresItemRepository) Update(ctx context.Context, id string, name, description *string) (*Item, error) {
	// No fields supplied: a no-op by contract, return the current row.
	if name == nil && description == nil {
		return r.GetByID(ctx, id)
	}

	row := r.db.Querier(ctx).QueryRow(ctx,
		`update items
		 set name = coalesce($2, name),
		     description = coalesce($3, description),
		     updated_at = $4
		 where id = $1
		 returning `+itemColumns,
		id, name, description, time.Now().UTC(),
	)

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

func (r *PostgresItemRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Querier(ctx).Exec(ctx, `delete from items where id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
