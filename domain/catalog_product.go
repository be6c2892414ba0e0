package domain

import "github.com/shopspring/decimal"

//go:generate go run ../cmd/generator -table catalogo_produto -label "Catálogo De Produtos" CatalogProduct

// CatalogProduct is the sellable item as listed in the catalog. Physical units
// bought from suppliers are Product instances pointing back at it.
type CatalogProduct struct {
	ID          int64           `col:"id" label:"Id"`
	Name        string          `col:"nome" label:"Nome" validate:"required"`
	Description string          `col:"descricao" label:"Descrição"`
	Price       decimal.Decimal `col:"preco" label:"Preço" validate:"gt=0"`
	CategoryID  int64           `col:"categoria_id" label:"Categoria Id" ref:"categoria" edge:"->CATEGORIZADO_COM" validate:"required"`
}
