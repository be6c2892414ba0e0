package domain

//go:generate go run ../cmd/generator -table cliente -label Cliente Client

type Client struct {
	ID        int64  `col:"id" label:"Id"`
	CPF       string `col:"cpf" label:"CPF" validate:"required"`
	FirstName string `col:"nome" label:"Nome" validate:"required"`
	LastName  string `col:"ultimo_nome" label:"Último Nome"`
	Phone     string `col:"telefone" label:"Telefone"`
	Email     string `col:"email" label:"Email" validate:"omitempty,email"`
	AddressID int64  `col:"endereco_id" label:"Endereço Id" ref:"endereco" edge:"->RESIDE_EM" validate:"required"`
}
