package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hlubek/gestao-varejo/domain"
	"github.com/hlubek/gestao-varejo/schema"
)

// Store is the persistence contract the console needs for one entity type.
type Store[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Insert(ctx context.Context, e *T) (int64, error)
	Update(ctx context.Context, id int64, changeSet schema.ChangeSet) error
	Delete(ctx context.Context, id int64) error
}

// Handler runs the menu actions of one entity type.
type Handler interface {
	Label() string
	List(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
}

type entityHandler[T any] struct {
	desc     *schema.Descriptor[T]
	store    Store[T]
	validate *validator.Validate
	prompt   *Prompter
}

// NewHandler returns the handler of the entity described by desc.
func NewHandler[T any](desc *schema.Descriptor[T], store Store[T], validate *validator.Validate, prompt *Prompter) Handler {
	return &entityHandler[T]{
		desc:     desc,
		store:    store,
		validate: validate,
		prompt:   prompt,
	}
}

func (h *entityHandler[T]) Label() string {
	return h.desc.Label
}

func (h *entityHandler[T]) List(ctx context.Context) error {
	entities, err := h.store.FindAll(ctx)
	if err != nil {
		return err
	}

	h.prompt.Printf("%s's:\n", h.desc.Label)
	if len(entities) == 0 {
		h.prompt.Println("Nenhum registro encontrado.")
		return nil
	}
	for i := range entities {
		h.prompt.Println(h.desc.Display(&entities[i]))
	}
	return nil
}

func (h *entityHandler[T]) Create(ctx context.Context) error {
	var e T
	for _, f := range h.desc.Writable() {
		if err := h.readField(f, &e, false); err != nil {
			return err
		}
	}
	if err := h.check(&e); err != nil {
		return err
	}

	id, err := h.store.Insert(ctx, &e)
	if err != nil {
		return err
	}
	h.prompt.Printf("%s criado com Id %d.\n", h.desc.Label, id)
	return nil
}

// Edit shows the current value of every field; a blank answer keeps it.
func (h *entityHandler[T]) Edit(ctx context.Context) error {
	id, err := h.readID()
	if err != nil {
		return err
	}
	current, err := h.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	edited := *current
	for _, f := range h.desc.Writable() {
		if err := h.readField(f, &edited, true); err != nil {
			return err
		}
	}
	if err := h.check(&edited); err != nil {
		return err
	}

	changes := h.desc.Diff(current, &edited)
	if changes.Empty() {
		h.prompt.Println("Nenhuma alteração.")
		return nil
	}
	if err := h.store.Update(ctx, id, changes); err != nil {
		return err
	}
	h.prompt.Printf("%s %d atualizado.\n", h.desc.Label, id)
	return nil
}

func (h *entityHandler[T]) Delete(ctx context.Context) error {
	id, err := h.readID()
	if err != nil {
		return err
	}
	if err := h.store.Delete(ctx, id); err != nil {
		return err
	}
	h.prompt.Printf("%s %d deletado.\n", h.desc.Label, id)
	return nil
}

func (h *entityHandler[T]) readID() (int64, error) {
	answer, err := h.prompt.Ask(h.desc.Key().Label + ": ")
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(answer, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidInput("%s inválido: %q", h.desc.Key().Label, answer)
	}
	return id, nil
}

// readField prompts for f and stores the answer in e. In edit mode the current
// value is shown and kept on a blank answer.
func (h *entityHandler[T]) readField(f schema.Field[T], e *T, edit bool) error {
	ptr := f.Ptr(e)

	var q strings.Builder
	q.WriteString(f.Label)
	if hint := schema.KindOf(ptr).Hint(); hint != "" {
		fmt.Fprintf(&q, " (%s)", hint)
	}
	if edit {
		fmt.Fprintf(&q, " [%s]", schema.Format(ptr))
	}
	q.WriteString(": ")

	answer, err := h.prompt.Ask(q.String())
	if err != nil {
		return err
	}
	if edit && answer == "" {
		return nil
	}
	if err := schema.Parse(ptr, answer); err != nil {
		return invalidInput("%s: %v", f.Label, err)
	}
	return nil
}

func (h *entityHandler[T]) check(e *T) error {
	err := h.validate.Struct(e)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, h.describe(fe))
		}
		return invalidInput("%s", strings.Join(msgs, "; "))
	}
	return err
}

func (h *entityHandler[T]) describe(fe validator.FieldError) string {
	label := fe.Field()
	for _, f := range h.desc.Fields {
		if f.Name == fe.StructField() {
			label = f.Label
			break
		}
	}

	switch fe.Tag() {
	case "required":
		return label + " é obrigatório"
	case "gt":
		return label + " deve ser maior que " + fe.Param()
	case "gte":
		return label + " deve ser maior ou igual a " + fe.Param()
	case "email":
		return label + " deve ser um email válido"
	default:
		return fmt.Sprintf("%s inválido (%s)", label, fe.Tag())
	}
}

// inputError is a rejected answer; its message is shown to the user as is.
type inputError struct {
	msg string
}

func (e *inputError) Error() string {
	return e.msg
}

func (e *inputError) Unwrap() error {
	return domain.ErrInvalidInput
}

func invalidInput(format string, a ...any) error {
	return &inputError{msg: fmt.Sprintf(format, a...)}
}
