package main

import (
	"github.com/go-playground/validator/v10"

	"github.com/hlubek/gestao-varejo/console"
	"github.com/hlubek/gestao-varejo/domain"
	"github.com/hlubek/gestao-varejo/fixtures"
	"github.com/hlubek/gestao-varejo/schema"
	"github.com/hlubek/gestao-varejo/store"
)

// entities binds every entity type to the backend, once for the menu and once
// for fixture loading.
type entities struct {
	handlers []console.Handler
	tables   []fixtures.Table
}

func register[T any](e *entities, b *store.Backend, desc *schema.Descriptor[T], validate *validator.Validate, prompt *console.Prompter) {
	repo := store.Bind(b, desc)
	e.handlers = append(e.handlers, console.NewHandler(desc, console.Store[T](repo), validate, prompt))
	e.tables = append(e.tables, fixtures.NewTable(desc, fixtures.Inserter[T](repo), validate))
}

// bindEntities registers the entities in menu order. prompt may be nil when
// only fixtures are loaded.
func bindEntities(b *store.Backend, prompt *console.Prompter) *entities {
	v := domain.NewValidator()
	e := &entities{}
	register(e, b, domain.CategoryDescriptor, v, prompt)
	register(e, b, domain.CatalogProductDescriptor, v, prompt)
	register(e, b, domain.ProductDescriptor, v, prompt)
	register(e, b, domain.ClientDescriptor, v, prompt)
	register(e, b, domain.SupplierDescriptor, v, prompt)
	register(e, b, domain.EmployeeDescriptor, v, prompt)
	register(e, b, domain.AddressDescriptor, v, prompt)
	register(e, b, domain.PurchaseDescriptor, v, prompt)
	register(e, b, domain.SaleDescriptor, v, prompt)
	return e
}
