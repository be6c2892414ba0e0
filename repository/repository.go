package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/hlubek/gestao-varejo/domain"
	"github.com/hlubek/gestao-varejo/schema"
)

// Repository maps one entity type onto its table using the entity descriptor.
type Repository[T any] struct {
	builder squirrel.StatementBuilderType
	desc    *schema.Descriptor[T]
	logger  *zap.Logger
}

func New[T any](runner squirrel.BaseRunner, dialect Dialect, desc *schema.Descriptor[T], logger *zap.Logger) *Repository[T] {
	return &Repository[T]{
		builder: dialect.Builder(runner),
		desc:    desc,
		logger:  logger.Named("repository").With(zap.String("table", desc.Table)),
	}
}

func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	q := r.builder.
		Select(r.desc.Columns()...).
		From(r.desc.Table).
		OrderBy(r.desc.Key().Column)
	r.trace(q)

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", r.desc.Table, err)
	}
	defer rows.Close()

	var entities []T
	for rows.Next() {
		var e T
		if err := rows.Scan(r.desc.Targets(&e)...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", r.desc.Table, err)
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", r.desc.Table, err)
	}
	return entities, nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	q := r.builder.
		Select(r.desc.Columns()...).
		From(r.desc.Table).
		Where(squirrel.Eq{r.desc.Key().Column: id})
	r.trace(q)

	var e T
	err := q.QueryRowContext(ctx).Scan(r.desc.Targets(&e)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %d: %w", r.desc.Table, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s %d: %w", r.desc.Table, id, err)
	}
	return &e, nil
}

// Insert writes all non-key fields of e and stores the generated key in e.
func (r *Repository[T]) Insert(ctx context.Context, e *T) (int64, error) {
	q := r.builder.
		Insert(r.desc.Table).
		Columns(r.desc.Columns(r.desc.Writable()...)...).
		Values(r.desc.Values(e)...).
		Suffix("RETURNING " + r.desc.Key().Column)
	r.trace(q)

	var id int64
	if err := q.QueryRowContext(ctx).Scan(&id); err != nil {
		return 0, r.writeError("inserting into", err)
	}
	r.desc.SetID(e, id)

	r.logger.Debug("inserted", zap.Int64("id", id))
	return id, nil
}

// Update writes only the columns of changeSet.
func (r *Repository[T]) Update(ctx context.Context, id int64, changeSet schema.ChangeSet) error {
	if changeSet.Empty() {
		return nil
	}

	q := r.builder.
		Update(r.desc.Table).
		Where(squirrel.Eq{r.desc.Key().Column: id})
	for _, ch := range changeSet.Changes() {
		f, ok := r.desc.Lookup(ch.Column)
		if !ok || f.Key {
			return fmt.Errorf("%w: %s has no writable column %s", domain.ErrInvalidInput, r.desc.Table, ch.Column)
		}
		q = q.Set(ch.Column, ch.Value)
	}
	r.trace(q)

	res, err := q.ExecContext(ctx)
	if err != nil {
		return r.writeError("updating", err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", r.desc.Table, id, domain.ErrNotFound)
	}
	if rowsAffected != 1 {
		return fmt.Errorf("update affected %d rows, but expected exactly 1", rowsAffected)
	}
	return nil
}

// Delete removes the row with the given key. Rows still referenced by a
// foreign key are kept and ErrStillReferenced is returned.
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	q := r.builder.
		Delete(r.desc.Table).
		Where(squirrel.Eq{r.desc.Key().Column: id})
	r.trace(q)

	res, err := q.ExecContext(ctx)
	if err != nil {
		if classify(err) == foreignKeyViolation {
			return fmt.Errorf("deleting %s %d: %w", r.desc.Table, id, domain.ErrStillReferenced)
		}
		return fmt.Errorf("deleting %s %d: %w", r.desc.Table, id, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", r.desc.Table, id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository[T]) writeError(action string, err error) error {
	switch classify(err) {
	case foreignKeyViolation:
		return fmt.Errorf("%s %s: %w: %v", action, r.desc.Table, domain.ErrInvalidReference, err)
	case notNullViolation:
		return fmt.Errorf("%s %s: %w: %v", action, r.desc.Table, domain.ErrInvalidInput, err)
	case uniqueViolation:
		return fmt.Errorf("%s %s: %w: %v", action, r.desc.Table, domain.ErrAlreadyExists, err)
	}
	return fmt.Errorf("%s %s: %w", action, r.desc.Table, err)
}

func (r *Repository[T]) trace(q squirrel.Sqlizer) {
	if ce := r.logger.Check(zap.DebugLevel, "executing statement"); ce != nil {
		query, args, _ := q.ToSql()
		ce.Write(zap.String("sql", query), zap.Any("args", args))
	}
}
