package domain

//go:generate go run ../cmd/generator -table fornecedor -label Fornecedor Supplier

type Supplier struct {
	ID        int64  `col:"id" label:"Id"`
	CNPJ      string `col:"cnpj" label:"Cnpj" validate:"required"`
	Email     string `col:"email" label:"Email" validate:"required,email"`
	Phone     string `col:"telefone" label:"Telefone"`
	AddressID *int64 `col:"endereco_id" label:"Endereço Id" ref:"endereco" edge:"->LOCALIZADO_EM"`
}
