package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/feature"

	"github.com/conectone/platform/pkg/result"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("entity not found")

// Repository is the generic data access surface every per-module store is
// built on. T is the entity struct; queries run against the provided bun.IDB
// so the same repository works inside and outside transactions.
type Repository[T any] struct {
	db bun.IDB
}

// NewRepository creates a repository over the given database handle.
func NewRepository[T any](db bun.IDB) *Repository[T] {
	return &Repository[T]{db: db}
}

// WithTx returns a repository bound to the transaction.
func (r *Repository[T]) WithTx(tx bun.Tx) *Repository[T] {
	return &Repository[T]{db: tx}
}

// GetOne loads the entity matching the Spec. ErrNotFound when no row matches.
func (r *Repository[T]) GetOne(ctx context.Context, spec *Spec) (*T, error) {
	var entity T
	q := r.db.NewSelect().Model(&entity)
	applySpec(q, spec)
	if err := q.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// GetByID loads the entity with the given primary key, tenant-scoped when
// tenantID is non-empty.
func (r *Repository[T]) GetByID(ctx context.Context, tenantID string, id interface{}) (*T, error) {
	spec := NewSpec("id = ?", id)
	if tenantID != "" {
		spec.Where("tenant_id = ?", tenantID)
	}
	return r.GetOne(ctx, spec)
}

// List loads every entity matching the Spec.
func (r *Repository[T]) List(ctx context.Context, spec *Spec) ([]*T, error) {
	var entities []*T
	q := r.db.NewSelect().Model(&entities)
	applySpec(q, spec)
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

// Count returns the number of entities matching the Spec.
func (r *Repository[T]) Count(ctx context.Context, spec *Spec) (int, error) {
	var entity T
	q := r.db.NewSelect().Model(&entity)
	applySpec(q, spec)
	return q.Count(ctx)
}

// Page returns one page of entities matching the Spec along with the total
// count, wrapped as a PaginatedResult.
func (r *Repository[T]) Page(ctx context.Context, spec *Spec, params result.RequestParameters) (result.PaginatedResult[*T], error) {
	var entities []*T
	q := r.db.NewSelect().Model(&entities)
	applySpec(q, spec)

	total, err := q.Count(ctx)
	if err != nil {
		return result.PaginatedResult[*T]{}, err
	}
	if total == 0 {
		return result.Paginate([]*T{}, 0, params.Page(), params.Size()), nil
	}

	if err := q.Offset(params.Offset()).Limit(params.Size()).Scan(ctx); err != nil {
		return result.PaginatedResult[*T]{}, err
	}
	return result.Paginate(entities, total, params.Page(), params.Size()), nil
}

// Create inserts one or more entities.
func (r *Repository[T]) Create(ctx context.Context, entities ...*T) error {
	if len(entities) == 0 {
		return nil
	}
	_, err := r.db.NewInsert().Model(&entities).Exec(ctx)
	return err
}

// Update writes the entity identified by its primary key.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	res, err := r.db.NewUpdate().Model(entity).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes the entities matching the Spec and reports how many rows
// were removed.
func (r *Repository[T]) Delete(ctx context.Context, spec *Spec) (int64, error) {
	var entity T
	q := r.db.NewDelete().Model(&entity)
	for _, c := range spec.where {
		q = q.Where(c.schema, c.args...)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Upsert inserts entities, updating the listed fields when a row with the
// same conflict keys exists. Dialect-aware: ON CONFLICT for postgres/sqlite,
// ON DUPLICATE KEY for mysql.
func (r *Repository[T]) Upsert(ctx context.Context, fields, conflictKeys []string, entities ...*T) error {
	if len(fields) == 0 {
		return fmt.Errorf("upsert fields cannot be empty")
	}
	if len(entities) == 0 {
		return nil
	}

	q := r.db.NewInsert().Model(&entities)

	switch {
	case r.db.Dialect().Features().Has(feature.InsertOnConflict):
		if len(conflictKeys) == 0 {
			conflictKeys = []string{"id"}
		}
		sets := make([]string, len(fields))
		for i, f := range fields {
			sets[i] = fmt.Sprintf("%s = EXCLUDED.%s", f, f)
		}
		_, err := q.
			On("CONFLICT (" + strings.Join(conflictKeys, ", ") + ") DO UPDATE").
			Set(strings.Join(sets, ", ")).
			Exec(ctx)
		return err

	case r.db.Dialect().Features().Has(feature.InsertOnDuplicateKey):
		sets := make([]string, len(fields))
		for i, f := range fields {
			sets[i] = fmt.Sprintf("%s = VALUES(%s)", f, f)
		}
		_, err := q.
			On("DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")).
			Exec(ctx)
		return err

	default:
		return fmt.Errorf("dialect does not support upsert")
	}
}

// Exists reports whether any entity matches the Spec.
func (r *Repository[T]) Exists(ctx context.Context, spec *Spec) (bool, error) {
	n, err := r.Count(ctx, spec)
	return n > 0, err
}

func applySpec(q *bun.SelectQuery, spec *Spec) {
	if spec == nil {
		return
	}
	for _, c := range spec.where {
		q.Where(c.schema, c.args...)
	}
	for _, rel := range spec.relations {
		q.Relation(rel)
	}
	for _, o := range spec.orders {
		q.Order(o)
	}
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return nil // driver does not report affected rows
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
