package graph

import (
	"fmt"
	"strings"

	"github.com/hlubek/gestao-varejo/schema"
)

const (
	node  = "n"
	keyID = "id"
)

func constraintCypher(label string) string {
	return fmt.Sprintf("CREATE CONSTRAINT %s_id IF NOT EXISTS FOR (n:%s) REQUIRE n.id IS UNIQUE", label, label)
}

// refVar names the variable bound to the node referenced by field i.
func refVar(i int) string {
	return fmt.Sprintf("r%d", i)
}

// edgeVar names the variable bound to the relationship of field i.
func edgeVar(i int) string {
	return fmt.Sprintf("e%d", i)
}

// pattern renders the relationship of a reference field between the entity node
// and other, binding the relationship to rel if it is not empty.
func pattern(edge schema.Edge, rel, other string) string {
	if edge.Inbound {
		return fmt.Sprintf("(%s)<-[%s:%s]-(%s)", node, rel, edge.Type, other)
	}
	return fmt.Sprintf("(%s)-[%s:%s]->(%s)", node, rel, edge.Type, other)
}

// selectCypher returns all nodes of the label, or the one with $id.
func selectCypher[T any](d *schema.Descriptor[T], byID bool) string {
	var b strings.Builder
	if byID {
		fmt.Fprintf(&b, "MATCH (n:%s {id: $id})\n", d.Table)
	} else {
		fmt.Fprintf(&b, "MATCH (n:%s)\n", d.Table)
	}

	returns := make([]string, 0, len(d.Fields))
	for i, f := range d.Fields {
		if f.IsRef() {
			fmt.Fprintf(&b, "OPTIONAL MATCH %s\n", pattern(f.Edge, "", refVar(i)+":"+f.Ref))
			returns = append(returns, fmt.Sprintf("%s.id AS %s", refVar(i), f.Column))
			continue
		}
		returns = append(returns, fmt.Sprintf("n.%s AS %s", f.Column, f.Column))
	}

	fmt.Fprintf(&b, "RETURN %s", strings.Join(returns, ", "))
	if !byID {
		b.WriteString("\nORDER BY n.id")
	}
	return b.String()
}

// insertCypher creates the node with the next free id of its label and links it
// to every referenced node. A missing referenced node yields no row.
func insertCypher[T any](d *schema.Descriptor[T], e *T) (string, map[string]any) {
	var (
		b      strings.Builder
		params = map[string]any{}
		linked []int
		sets   []string
	)

	for i, f := range d.Fields {
		if f.Key {
			continue
		}
		value := schema.Value(f.Ptr(e))
		if f.IsRef() {
			if value == nil {
				continue
			}
			fmt.Fprintf(&b, "MATCH (%s:%s {id: $%s})\n", refVar(i), f.Ref, f.Column)
			params[f.Column] = value
			linked = append(linked, i)
			continue
		}
		params[f.Column] = toProperty(value)
		sets = append(sets, fmt.Sprintf("n.%s = $%s", f.Column, f.Column))
	}

	carried := make([]string, 0, len(linked)+1)
	for _, i := range linked {
		carried = append(carried, refVar(i))
	}
	carried = append(carried, "coalesce(max(m.id), 0) + 1 AS nextId")

	fmt.Fprintf(&b, "OPTIONAL MATCH (m:%s)\n", d.Table)
	fmt.Fprintf(&b, "WITH %s\n", strings.Join(carried, ", "))
	fmt.Fprintf(&b, "CREATE (n:%s {id: nextId})\n", d.Table)
	if len(sets) > 0 {
		fmt.Fprintf(&b, "SET %s\n", strings.Join(sets, ", "))
	}
	for _, i := range linked {
		f := d.Fields[i]
		fmt.Fprintf(&b, "CREATE %s\n", pattern(f.Edge, "", refVar(i)))
	}
	b.WriteString("RETURN n.id AS id")

	return b.String(), params
}

// updateCypher sets the changed properties and relinks the changed references.
// Neither an unknown id nor a missing referenced node yields a row.
func updateCypher[T any](d *schema.Descriptor[T], id int64, changeSet schema.ChangeSet) (string, map[string]any, error) {
	var (
		b       strings.Builder
		params  = map[string]any{keyID: id}
		matches []string
		sets    []string
		relinks []int
		linked  []int
	)

	for _, ch := range changeSet.Changes() {
		i, f, ok := lookup(d, ch.Column)
		if !ok || f.Key {
			return "", nil, fmt.Errorf("%s has no writable property %s", d.Table, ch.Column)
		}
		if f.IsRef() {
			relinks = append(relinks, i)
			if ch.Value != nil {
				matches = append(matches, fmt.Sprintf("MATCH (%s:%s {id: $%s})\n", refVar(i), f.Ref, f.Column))
				params[f.Column] = ch.Value
				linked = append(linked, i)
			}
			continue
		}
		params[f.Column] = toProperty(ch.Value)
		sets = append(sets, fmt.Sprintf("n.%s = $%s", f.Column, f.Column))
	}

	fmt.Fprintf(&b, "MATCH (n:%s {id: $id})\n", d.Table)
	for _, m := range matches {
		b.WriteString(m)
	}
	if len(sets) > 0 {
		fmt.Fprintf(&b, "SET %s\n", strings.Join(sets, ", "))
	}

	carried := []string{node}
	for _, i := range linked {
		carried = append(carried, refVar(i))
	}
	for _, i := range relinks {
		f := d.Fields[i]
		fmt.Fprintf(&b, "WITH DISTINCT %s\n", strings.Join(carried, ", "))
		fmt.Fprintf(&b, "OPTIONAL MATCH %s\n", pattern(f.Edge, edgeVar(i), ":"+f.Ref))
		fmt.Fprintf(&b, "DELETE %s\n", edgeVar(i))
	}
	if len(relinks) > 0 {
		fmt.Fprintf(&b, "WITH DISTINCT %s\n", strings.Join(carried, ", "))
	}
	for _, i := range linked {
		fmt.Fprintf(&b, "CREATE %s\n", pattern(d.Fields[i].Edge, "", refVar(i)))
	}
	b.WriteString("RETURN n.id AS id")

	return b.String(), params, nil
}

// deleteCypher removes the relationships the entity owns, then the node. Other
// relationships make the server refuse the delete.
func deleteCypher[T any](d *schema.Descriptor[T]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "MATCH (n:%s {id: $id})\n", d.Table)
	for i, f := range d.Fields {
		if !f.IsRef() {
			continue
		}
		fmt.Fprintf(&b, "OPTIONAL MATCH %s\n", pattern(f.Edge, edgeVar(i), ":"+f.Ref))
		fmt.Fprintf(&b, "DELETE %s\n", edgeVar(i))
		b.WriteString("WITH DISTINCT n\n")
	}
	b.WriteString("WITH n, n.id AS id\n")
	b.WriteString("DELETE n\n")
	b.WriteString("RETURN id")
	return b.String()
}

func existsCypher(label string) string {
	return fmt.Sprintf("MATCH (n:%s {id: $id}) RETURN count(n) AS found", label)
}

func lookup[T any](d *schema.Descriptor[T], column string) (int, schema.Field[T], bool) {
	for i, f := range d.Fields {
		if f.Column == column {
			return i, f, true
		}
	}
	return 0, schema.Field[T]{}, false
}
