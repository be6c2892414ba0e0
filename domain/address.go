package domain

//go:generate go run ../cmd/generator -table endereco -label Endereço Address

type Address struct {
	ID       int64  `col:"id" label:"Id"`
	City     string `col:"cidade" label:"Cidade" validate:"required"`
	District string `col:"bairro" label:"Bairro"`
	Street   string `col:"rua" label:"Rua" validate:"required"`
	Number   string `col:"numero" label:"Número"`
	State    string `col:"estado" label:"Estado" validate:"required"`
}
