package domain

import "github.com/shopspring/decimal"

//go:generate go run ../cmd/generator -table funcionario -label Funcionário Employee

type Employee struct {
	ID        int64           `col:"id" label:"Id"`
	CPF       string          `col:"cpf" label:"CPF" validate:"required"`
	FirstName string          `col:"nome" label:"Nome" validate:"required"`
	LastName  string          `col:"ultimo_nome" label:"Último Nome"`
	Salary    decimal.Decimal `col:"salario" label:"Salário" validate:"gte=0"`
	Email     string          `col:"email" label:"Email" validate:"omitempty,email"`
	AddressID int64           `col:"endereco_id" label:"Endereço Id" ref:"endereco" edge:"->TRABALHA_EM" validate:"required"`
}

// FullName joins first and last name the way reports print them.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
