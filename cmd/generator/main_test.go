package main

import (
	"fmt"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func structOf(fields map[string]types.Type, order []string, tags []string) *types.Struct {
	vars := make([]*types.Var, len(order))
	for i, name := range order {
		vars[i] = types.NewField(token.NoPos, nil, name, fields[name], false)
	}
	return types.NewStruct(vars, tags)
}

func TestCollectFields(t *testing.T) {
	int64Type := types.Typ[types.Int64]
	stringType := types.Typ[types.String]

	t.Run("tags", func(t *testing.T) {
		st := structOf(
			map[string]types.Type{"ID": int64Type, "Name": stringType, "ParentID": int64Type, "cache": stringType, "Skip": stringType},
			[]string{"ID", "Name", "ParentID", "cache", "Skip"},
			[]string{`col:"id" label:"Id"`, `col:"nome"`, `col:"pai_id" label:"Pai Id" ref:"item" edge:"<-FILHO_DE"`, ``, `col:"-"`},
		)

		fields, err := collectFields(st)
		require.NoError(t, err)
		assert.Equal(t, []field{
			{name: "ID", column: "id", label: "Id"},
			{name: "Name", column: "nome", label: "Name"},
			{name: "ParentID", column: "pai_id", label: "Pai Id", ref: "item", edge: "FILHO_DE", inbound: true},
		}, fields)
	})

	tests := []struct {
		name    string
		fields  map[string]types.Type
		order   []string
		tags    []string
		wantErr string
	}{
		{
			name:    "missing col tag",
			fields:  map[string]types.Type{"ID": int64Type, "Name": stringType},
			order:   []string{"ID", "Name"},
			tags:    []string{`col:"id"`, ``},
			wantErr: "field Name has no col tag",
		},
		{
			name:    "missing key",
			fields:  map[string]types.Type{"Name": stringType},
			order:   []string{"Name"},
			tags:    []string{`col:"nome"`},
			wantErr: `no field with col:"id"`,
		},
		{
			name:    "key of wrong type",
			fields:  map[string]types.Type{"ID": stringType},
			order:   []string{"ID"},
			tags:    []string{`col:"id"`},
			wantErr: "key field ID must be int64",
		},
		{
			name:    "ref without edge",
			fields:  map[string]types.Type{"ID": int64Type, "ParentID": int64Type},
			order:   []string{"ID", "ParentID"},
			tags:    []string{`col:"id"`, `col:"pai_id" ref:"item"`},
			wantErr: "field ParentID needs both ref and edge tags",
		},
		{
			name:    "edge without direction",
			fields:  map[string]types.Type{"ID": int64Type, "ParentID": int64Type},
			order:   []string{"ID", "ParentID"},
			tags:    []string{`col:"id"`, `col:"pai_id" ref:"item" edge:"FILHO_DE"`},
			wantErr: "edge tag of field ParentID must start with -> or <-",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collectFields(structOf(tt.fields, tt.order, tt.tags))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestGenerate(t *testing.T) {
	f := generate("github.com/hlubek/gestao-varejo/domain", "domain", "Item", "item", "Item De Teste", []field{
		{name: "ID", column: "id", label: "Id"},
		{name: "ParentID", column: "pai_id", label: "Pai Id", ref: "item", edge: "FILHO_DE", inbound: true},
	})
	src := fmt.Sprintf("%#v", f)

	assert.Contains(t, src, "// Code generated by generator, DO NOT EDIT.")
	assert.Contains(t, src, `schema "github.com/hlubek/gestao-varejo/schema"`)
	assert.Contains(t, src, "var ItemDescriptor = &schema.Descriptor[Item]{")
	assert.Contains(t, src, `Label: "Item De Teste",`)
	assert.Contains(t, src, `Table: "item",`)
	assert.Contains(t, src, "Key:    true,")
	assert.Contains(t, src, "return &e.ParentID")
	assert.Contains(t, src, "Inbound: true,")
	assert.Contains(t, src, `Type:    "FILHO_DE",`)
}

func TestSnakeCase(t *testing.T) {
	for in, want := range map[string]string{
		"Sale":           "sale",
		"CatalogProduct": "catalog_product",
		"Address":        "address",
	} {
		assert.Equal(t, want, snakeCase(in))
	}
}
