package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

//go:generate go run ../cmd/generator -table produto -label Produto Product

// Product is a single unit of a catalog product, bought in a purchase and
// optionally sold in a sale.
type Product struct {
	ID               int64           `col:"id" label:"Id"`
	ManufacturedOn   time.Time       `col:"data_fabricacao" label:"Data Fabricação" validate:"required"`
	ExpiresOn        *time.Time      `col:"data_validade" label:"Data Validade"`
	DeliveredOn      *time.Time      `col:"data_entrega" label:"Data Entrega"`
	PurchaseValue    decimal.Decimal `col:"valor_compra" label:"Valor Compra" validate:"gt=0"`
	CatalogProductID int64           `col:"catalogo_produto_id" label:"Catálogo Produto Id" ref:"catalogo_produto" edge:"->CATEGORIZADO_COM" validate:"required"`
	PurchaseID       int64           `col:"compra_id" label:"Compra Id" ref:"compra" edge:"<-CONTAINS" validate:"required"`
	SaleID           *int64          `col:"venda_id" label:"Venda Id" ref:"venda" edge:"->VENDIDO"`
}
