package graph

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/hlubek/gestao-varejo/domain"
	"github.com/hlubek/gestao-varejo/schema"
)

// Repository maps one entity type onto nodes of its label.
type Repository[T any] struct {
	client Client
	desc   *schema.Descriptor[T]
	logger *zap.Logger
}

func New[T any](client Client, desc *schema.Descriptor[T], logger *zap.Logger) *Repository[T] {
	return &Repository[T]{
		client: client,
		desc:   desc,
		logger: logger.Named("graph").With(zap.String("label", desc.Table)),
	}
}

func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	records, err := r.client.Read(ctx, selectCypher(r.desc, false), nil)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", r.desc.Table, err)
	}

	entities := make([]T, 0, len(records))
	for _, rec := range records {
		var e T
		if err := scan(r.desc, rec, &e); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	records, err := r.client.Read(ctx, selectCypher(r.desc, true), map[string]any{keyID: id})
	if err != nil {
		return nil, fmt.Errorf("querying %s %d: %w", r.desc.Table, id, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s %d: %w", r.desc.Table, id, domain.ErrNotFound)
	}

	var e T
	if err := scan(r.desc, records[0], &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Insert creates the node and its relationships, then stores the assigned id in e.
func (r *Repository[T]) Insert(ctx context.Context, e *T) (int64, error) {
	cypher, params := insertCypher(r.desc, e)
	records, err := r.client.Write(ctx, cypher, params)
	if err != nil {
		return 0, r.writeError("inserting into", err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("inserting into %s: %w", r.desc.Table, domain.ErrInvalidReference)
	}

	id, err := toInt64(records[0][keyID])
	if err != nil {
		return 0, fmt.Errorf("reading id of new %s: %w", r.desc.Table, err)
	}
	r.desc.SetID(e, id)

	r.logger.Debug("inserted", zap.Int64("id", id))
	return id, nil
}

// Update writes only the properties and relationships of changeSet.
func (r *Repository[T]) Update(ctx context.Context, id int64, changeSet schema.ChangeSet) error {
	if changeSet.Empty() {
		return nil
	}

	cypher, params, err := updateCypher(r.desc, id, changeSet)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	records, err := r.client.Write(ctx, cypher, params)
	if err != nil {
		return r.writeError("updating", err)
	}
	if len(records) == 0 {
		found, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s %d: %w", r.desc.Table, id, domain.ErrNotFound)
		}
		return fmt.Errorf("updating %s %d: %w", r.desc.Table, id, domain.ErrInvalidReference)
	}
	return nil
}

// Delete removes the node together with the relationships it owns. Nodes still
// linked by other relationships are kept and ErrStillReferenced is returned.
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	records, err := r.client.Write(ctx, deleteCypher(r.desc), map[string]any{keyID: id})
	if err != nil {
		if stillReferenced(err) {
			return fmt.Errorf("deleting %s %d: %w", r.desc.Table, id, domain.ErrStillReferenced)
		}
		return fmt.Errorf("deleting %s %d: %w", r.desc.Table, id, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%s %d: %w", r.desc.Table, id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository[T]) exists(ctx context.Context, id int64) (bool, error) {
	records, err := r.client.Read(ctx, existsCypher(r.desc.Table), map[string]any{keyID: id})
	if err != nil {
		return false, fmt.Errorf("looking up %s %d: %w", r.desc.Table, id, err)
	}
	if len(records) == 0 {
		return false, nil
	}
	found, err := toInt64(records[0]["found"])
	return found > 0, err
}

func (r *Repository[T]) writeError(action string, err error) error {
	var neoErr *neo4j.Neo4jError
	if errors.As(err, &neoErr) && neoErr.Code == constraintFailed {
		return fmt.Errorf("%s %s: %w: %v", action, r.desc.Table, domain.ErrAlreadyExists, err)
	}
	return fmt.Errorf("%s %s: %w", action, r.desc.Table, err)
}

const constraintFailed = "Neo.ClientError.Schema.ConstraintValidationFailed"

// stillReferenced reports whether err is the server refusing to delete a node
// that has relationships.
func stillReferenced(err error) bool {
	var neoErr *neo4j.Neo4jError
	if !errors.As(err, &neoErr) {
		return false
	}
	return neoErr.Code == constraintFailed || strings.Contains(neoErr.Msg, "still has relationships")
}
