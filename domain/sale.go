package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

//go:generate go run ../cmd/generator -table venda -label Venda Sale

type Sale struct {
	ID         int64           `col:"id" label:"Id"`
	NFE        string          `col:"nfe" label:"NFE" validate:"required"`
	Date       time.Time       `col:"data" label:"Data" validate:"required"`
	Value      decimal.Decimal `col:"valor" label:"Valor" validate:"gt=0"`
	ClientID   int64           `col:"cliente_id" label:"Cliente Id" ref:"cliente" edge:"<-FEZ" validate:"required"`
	EmployeeID int64           `col:"funcionario_id" label:"Funcionário Id" ref:"funcionario" edge:"->ATENDIDO_POR" validate:"required"`
}
