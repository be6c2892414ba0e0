package schema

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Expires  *time.Time
	ParentID *int64
}

var itemDescriptor = &Descriptor[item]{
	Table: "item",
	Label: "Item",
	Fields: []Field[item]{
		{Name: "ID", Column: "id", Label: "Id", Key: true, Ptr: func(e *item) any { return &e.ID }},
		{Name: "Name", Column: "nome", Label: "Nome", Ptr: func(e *item) any { return &e.Name }},
		{Name: "Price", Column: "preco", Label: "Preço", Ptr: func(e *item) any { return &e.Price }},
		{Name: "Expires", Column: "validade", Label: "Validade", Ptr: func(e *item) any { return &e.Expires }},
		{Name: "ParentID", Column: "pai_id", Label: "Pai Id", Ref: "item", Edge: Edge{Type: "FILHO_DE"}, Ptr: func(e *item) any { return &e.ParentID }},
	},
}

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDescriptor_Fields(t *testing.T) {
	d := itemDescriptor

	assert.Equal(t, "id", d.Key().Column)
	assert.Equal(t, []string{"nome", "preco", "validade", "pai_id"}, d.Columns(d.Writable()...))
	assert.Equal(t, []string{"id", "nome", "preco", "validade", "pai_id"}, d.Columns())

	f, ok := d.Lookup("pai_id")
	require.True(t, ok)
	assert.True(t, f.IsRef())
	_, ok = d.Lookup("cor")
	assert.False(t, ok)

	var e item
	d.SetID(&e, 7)
	assert.Equal(t, int64(7), d.ID(&e))
	assert.Len(t, d.Targets(&e), 5)
}

func TestDescriptor_ValuesAndDisplay(t *testing.T) {
	expires := date("2025-01-31")
	e := item{ID: 3, Name: "Leite", Price: decimal.RequireFromString("4.5"), Expires: &expires}

	assert.Equal(t, []any{"Leite", decimal.RequireFromString("4.5"), expires, nil}, itemDescriptor.Values(&e))
	assert.Equal(t, "Id: 3, Nome: Leite, Preço: 4.50, Validade: 2025-01-31, Pai Id: null", itemDescriptor.Display(&e))
}

func TestDescriptor_Diff(t *testing.T) {
	parent := int64(1)
	before := item{ID: 3, Name: "Leite", Price: decimal.RequireFromString("4.50")}
	after := before
	after.Price = decimal.RequireFromString("4.5")

	assert.True(t, itemDescriptor.Diff(&before, &after).Empty(), "equal decimals with different scale")

	after.Name = "Leite integral"
	after.ParentID = &parent
	changes := itemDescriptor.Diff(&before, &after).Changes()
	assert.Equal(t, []Change{
		{Column: "nome", Value: "Leite integral"},
		{Column: "pai_id", Value: int64(1)},
	}, changes)
}

func TestChangeSet(t *testing.T) {
	var cs ChangeSet
	assert.True(t, cs.Empty())

	cs.Set("nome", "a")
	cs.Set("preco", 1)
	cs.Set("nome", "b")

	assert.Equal(t, []Change{{Column: "nome", Value: "b"}, {Column: "preco", Value: 1}}, cs.Changes())
}

func TestParse(t *testing.T) {
	t.Run("decimal accepts a comma", func(t *testing.T) {
		var d decimal.Decimal
		require.NoError(t, Parse(&d, " 18,90 "))
		assert.Equal(t, "18.90", d.StringFixed(2))
	})

	t.Run("nullable date", func(t *testing.T) {
		v := new(time.Time)
		p := &v
		require.NoError(t, Parse(p, "NULL"))
		assert.Nil(t, *p)

		require.NoError(t, Parse(p, "2024-02-29"))
		require.NotNil(t, *p)
		assert.Equal(t, "2024-02-29", Format(p))
	})

	t.Run("nullable int", func(t *testing.T) {
		var id *int64
		require.NoError(t, Parse(&id, "12"))
		require.NotNil(t, id)
		assert.Equal(t, int64(12), *id)
		require.NoError(t, Parse(&id, ""))
		assert.Nil(t, id)
	})

	t.Run("null is literal text for strings", func(t *testing.T) {
		var s string
		require.NoError(t, Parse(&s, "null"))
		assert.Equal(t, "null", s)
	})

	tests := []struct {
		name    string
		ptr     any
		raw     string
		wantErr string
	}{
		{name: "decimal", ptr: new(decimal.Decimal), raw: "dez", wantErr: `invalid decimal "dez", expected 00.00`},
		{name: "date", ptr: new(time.Time), raw: "31/12/2024", wantErr: `invalid date "31/12/2024", expected yyyy-mm-dd`},
		{name: "int", ptr: new(int64), raw: "1.5", wantErr: `invalid number "1.5"`},
		{name: "unsupported", ptr: new(bool), raw: "true", wantErr: "unsupported field type *bool"},
	}
	for _, tt := range tests {
		t.Run(tt.name+" error", func(t *testing.T) {
			assert.EqualError(t, Parse(tt.ptr, tt.raw), tt.wantErr)
		})
	}
}

func TestFormat_RoundsDecimals(t *testing.T) {
	d := decimal.RequireFromString("2.345")
	assert.Equal(t, "2.35", Format(&d))

	var parsed decimal.Decimal
	require.NoError(t, Parse(&parsed, Format(&d)))
	assert.False(t, parsed.Equal(d), "formatted value drops the third place")
}

func TestKind(t *testing.T) {
	var (
		n  int64
		pn *int64
		d  time.Time
		pd *time.Time
	)
	assert.Equal(t, KindInt, KindOf(&n))
	assert.True(t, KindOf(&pn).Nullable())
	assert.Equal(t, "yyyy-mm-dd", KindOf(&d).Hint())
	assert.Equal(t, "yyyy-mm-dd", KindOf(&pd).Hint())
	assert.Equal(t, "00.00", KindOf(new(decimal.Decimal)).Hint())
	assert.Equal(t, "", KindOf(new(string)).Hint())
	assert.Equal(t, KindUnknown, KindOf(new(bool)))
}

func TestEqual(t *testing.T) {
	a, b := date("2024-03-01"), date("2024-03-01")
	var none *time.Time

	assert.True(t, Equal(&a, &b))
	assert.False(t, Equal(&a, &none))
	assert.True(t, Equal(&none, &none))
	assert.True(t, Equal(new(decimal.Decimal), &decimal.Zero))
}
