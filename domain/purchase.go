package domain

import "time"

//go:generate go run ../cmd/generator -table compra -label Compra Purchase

type Purchase struct {
	ID         int64     `col:"id" label:"Id"`
	NFE        string    `col:"nfe" label:"NFE" validate:"required"`
	Date       time.Time `col:"data" label:"Data" validate:"required"`
	SupplierID int64     `col:"fornecedor_id" label:"Fornecedor Id" ref:"fornecedor" edge:"<-FORNECE" validate:"required"`
}
