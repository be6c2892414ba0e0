// Package schema holds the explicit entity descriptors consumed by the generic
// relational and graph mappers. Descriptors are generated from struct tags by
// cmd/generator, so nothing here inspects types at runtime.
package schema

import (
	"fmt"
	"strings"
)

// Edge is the graph relationship standing in for a foreign key column.
// Outbound edges read (n)-[:Type]->(ref), inbound ones (ref)-[:Type]->(n).
type Edge struct {
	Type    string
	Inbound bool
}

// Field describes one column of an entity.
type Field[T any] struct {
	Name   string
	Column string
	Label  string
	Key    bool
	// Ref is the referenced table of a foreign key column.
	Ref  string
	Edge Edge
	// Ptr returns a pointer to the field inside e.
	Ptr func(e *T) any
}

// IsRef reports whether the field is a foreign key.
func (f Field[T]) IsRef() bool {
	return f.Ref != ""
}

type Descriptor[T any] struct {
	Table  string
	Label  string
	Fields []Field[T]
}

// Key returns the surrogate key field.
func (d *Descriptor[T]) Key() Field[T] {
	for _, f := range d.Fields {
		if f.Key {
			return f
		}
	}
	panic(fmt.Sprintf("schema: descriptor %s has no key field", d.Table))
}

// Writable returns all fields except the key, in declaration order.
func (d *Descriptor[T]) Writable() []Field[T] {
	fields := make([]Field[T], 0, len(d.Fields))
	for _, f := range d.Fields {
		if !f.Key {
			fields = append(fields, f)
		}
	}
	return fields
}

// Columns returns the column names of fields, or of all fields if none are given.
func (d *Descriptor[T]) Columns(fields ...Field[T]) []string {
	if len(fields) == 0 {
		fields = d.Fields
	}
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Column
	}
	return cols
}

func (d *Descriptor[T]) Lookup(column string) (Field[T], bool) {
	for _, f := range d.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return Field[T]{}, false
}

func (d *Descriptor[T]) ID(e *T) int64 {
	return *d.Key().Ptr(e).(*int64)
}

func (d *Descriptor[T]) SetID(e *T, id int64) {
	*d.Key().Ptr(e).(*int64) = id
}

// Targets returns scan destinations for all columns in declaration order.
func (d *Descriptor[T]) Targets(e *T) []any {
	targets := make([]any, len(d.Fields))
	for i, f := range d.Fields {
		targets[i] = f.Ptr(e)
	}
	return targets
}

// Values returns the driver values of the writable fields.
func (d *Descriptor[T]) Values(e *T) []any {
	writable := d.Writable()
	values := make([]any, len(writable))
	for i, f := range writable {
		values[i] = Value(f.Ptr(e))
	}
	return values
}

// Display renders e as "Label: value, Label: value".
func (d *Descriptor[T]) Display(e *T) string {
	parts := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		parts[i] = f.Label + ": " + Format(f.Ptr(e))
	}
	return strings.Join(parts, ", ")
}

// Diff collects the writable fields whose value differs between before and after.
func (d *Descriptor[T]) Diff(before, after *T) ChangeSet {
	var changes ChangeSet
	for _, f := range d.Writable() {
		if !Equal(f.Ptr(before), f.Ptr(after)) {
			changes.Set(f.Column, Value(f.Ptr(after)))
		}
	}
	return changes
}
