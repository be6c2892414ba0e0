package domain

//go:generate go run ../cmd/generator -table categoria -label Categoria Category

type Category struct {
	ID   int64  `col:"id" label:"Id"`
	Name string `col:"nome" label:"Nome" validate:"required"`
}
