// Package fixtures loads seed data from YAML documents into the stores.
//
// A document maps table names to rows of column values written as console
// input. A foreign key value "#n" refers to the n-th row of the referenced table
// in the same document:
//
//	categoria:
//	  - nome: Bebidas
//	catalogo_produto:
//	  - nome: Café
//	    preco: "18.90"
//	    categoria_id: "#1"
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hlubek/gestao-varejo/schema"
)

type Row map[string]string

type Document map[string][]Row

// Parse decodes a YAML document.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("decoding fixtures: %w", err)
	}
	return doc, nil
}

// Encode writes doc as YAML.
func (d Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding fixtures: %w", err)
	}
	return enc.Close()
}

// Inserter is the part of a store fixtures need.
type Inserter[T any] interface {
	Insert(ctx context.Context, e *T) (int64, error)
}

// Table inserts document rows of one entity type.
type Table interface {
	Name() string
	// Refs returns the tables referenced by foreign keys.
	Refs() []string
	insert(ctx context.Context, row Row, resolve resolver) (int64, error)
}

type resolver func(table, raw string) (string, error)

type table[T any] struct {
	desc     *schema.Descriptor[T]
	store    Inserter[T]
	validate *validator.Validate
}

func NewTable[T any](desc *schema.Descriptor[T], store Inserter[T], validate *validator.Validate) Table {
	return &table[T]{desc: desc, store: store, validate: validate}
}

func (t *table[T]) Name() string {
	return t.desc.Table
}

func (t *table[T]) Refs() []string {
	var refs []string
	for _, f := range t.desc.Fields {
		if f.IsRef() {
			refs = append(refs, f.Ref)
		}
	}
	return refs
}

func (t *table[T]) insert(ctx context.Context, row Row, resolve resolver) (int64, error) {
	for column := range row {
		if f, ok := t.desc.Lookup(column); !ok || f.Key {
			return 0, fmt.Errorf("unknown column %s", column)
		}
	}

	var e T
	for _, f := range t.desc.Writable() {
		raw, ok := row[f.Column]
		if !ok {
			continue
		}
		if f.IsRef() {
			var err error
			if raw, err = resolve(f.Ref, raw); err != nil {
				return 0, fmt.Errorf("%s: %w", f.Column, err)
			}
		}
		if err := schema.Parse(f.Ptr(&e), raw); err != nil {
			return 0, fmt.Errorf("%s: %w", f.Column, err)
		}
	}
	if err := t.validate.Struct(&e); err != nil {
		return 0, err
	}
	return t.store.Insert(ctx, &e)
}

// Loader inserts documents into a fixed set of tables.
type Loader struct {
	tables []Table
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger, tables ...Table) *Loader {
	return &Loader{tables: tables, logger: logger.Named("fixtures")}
}

// Load inserts all rows of doc, referenced tables first, and returns the
// number of rows inserted per table.
func (l *Loader) Load(ctx context.Context, doc Document) (map[string]int, error) {
	byName := make(map[string]Table, len(l.tables))
	for _, t := range l.tables {
		byName[t.Name()] = t
	}
	for name := range doc {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("unknown table %s", name)
		}
	}

	order, err := dependencyOrder(l.tables)
	if err != nil {
		return nil, err
	}

	ids := make(map[string][]int64, len(doc))
	resolve := func(table, raw string) (string, error) {
		if !strings.HasPrefix(raw, "#") {
			return raw, nil
		}
		n, err := strconv.Atoi(raw[1:])
		if err != nil || n < 1 {
			return "", fmt.Errorf("invalid row reference %q", raw)
		}
		if n > len(ids[table]) {
			return "", fmt.Errorf("row reference %q: %s has only %d rows", raw, table, len(ids[table]))
		}
		return strconv.FormatInt(ids[table][n-1], 10), nil
	}

	counts := make(map[string]int, len(doc))
	for _, t := range order {
		rows := doc[t.Name()]
		for i, row := range rows {
			id, err := t.insert(ctx, row, resolve)
			if err != nil {
				return counts, fmt.Errorf("%s row %d: %w", t.Name(), i+1, err)
			}
			ids[t.Name()] = append(ids[t.Name()], id)
		}
		if len(rows) > 0 {
			counts[t.Name()] = len(rows)
			l.logger.Info("loaded fixtures", zap.String("table", t.Name()), zap.Int("rows", len(rows)))
		}
	}
	return counts, nil
}

// dependencyOrder sorts tables so that every table follows the tables it
// references. Ties keep the given order.
func dependencyOrder(tables []Table) ([]Table, error) {
	byName := make(map[string]Table, len(tables))
	position := make(map[string]int, len(tables))
	for i, t := range tables {
		byName[t.Name()] = t
		position[t.Name()] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(tables))
	order := make([]Table, 0, len(tables))

	var visit func(t Table) error
	visit = func(t Table) error {
		switch state[t.Name()] {
		case visiting:
			return fmt.Errorf("reference cycle through %s", t.Name())
		case done:
			return nil
		}
		state[t.Name()] = visiting

		refs := t.Refs()
		sort.SliceStable(refs, func(i, j int) bool { return position[refs[i]] < position[refs[j]] })
		for _, ref := range refs {
			dep, ok := byName[ref]
			if !ok {
				return fmt.Errorf("%s references unknown table %s", t.Name(), ref)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		state[t.Name()] = done
		order = append(order, t)
		return nil
	}

	for _, t := range tables {
		if err := visit(t); err != nil {
			return nil, err
		}
	}
	return order, nil
}
