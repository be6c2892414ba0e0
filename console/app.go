// Package console implements the interactive menu over the entity handlers and
// the reports.
package console

import (
	"context"
	"errors"
	"io"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hlubek/gestao-varejo/domain"
	"github.com/hlubek/gestao-varejo/report"
)

var errInvalidChoice = errors.New("invalid menu choice")

const (
	msgInvalidChoice   = "Opção inválida. Tente novamente."
	msgNotFound        = "Registro não encontrado."
	msgStillReferenced = "Não foi possível deletar a entidade. Existem relacionamentos ativos."
	msgBadReference    = "Registro referenciado não existe."
	msgAlreadyExists   = "Já existe um registro com estes dados."
)

type action struct {
	name    string
	title   string
	failure string
	run     func(h Handler, ctx context.Context) error
}

var (
	listAction = action{
		name:    "list",
		title:   "Selecione uma entidade para ler:",
		failure: "Não foi possível consultar os registros.",
		run:     Handler.List,
	}
	createAction = action{
		name:    "create",
		title:   "Selecione uma entidade para criar:",
		failure: "Não foi possível criar a entidade. Verifique se os dados foram preenchidos corretamente.",
		run:     Handler.Create,
	}
	editAction = action{
		name:    "edit",
		title:   "Selecione uma entidade para editar:",
		failure: "Não foi possível editar a entidade. Verifique se os dados foram preenchidos corretamente.",
		run:     Handler.Edit,
	}
	deleteAction = action{
		name:    "delete",
		title:   "Selecione uma entidade para deletar:",
		failure: "Não foi possível deletar a entidade. Verifique se os dados foram preenchidos corretamente.",
		run:     Handler.Delete,
	}
)

// App is the main menu loop.
type App struct {
	prompt   *Prompter
	handlers []Handler
	reports  report.Service
	printer  *message.Printer
	logger   *zap.Logger
}

func NewApp(prompt *Prompter, handlers []Handler, reports report.Service, logger *zap.Logger) *App {
	return &App{
		prompt:   prompt,
		handlers: handlers,
		reports:  reports,
		printer:  message.NewPrinter(language.BrazilianPortuguese),
		logger:   logger.Named("console"),
	}
}

// Run shows the main menu until the user leaves or the input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		a.prompt.Println("\nEscolha uma opção:")
		a.prompt.Println("1. Consultar registros")
		a.prompt.Println("2. Criar registro")
		a.prompt.Println("3. Editar registro")
		a.prompt.Println("4. Deletar registro")
		a.prompt.Println("5. Relatórios")
		a.prompt.Println("6. Sair")

		choice, err := a.prompt.Ask("Sua escolha: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.entityAction(ctx, listAction)
		case "2":
			err = a.entityAction(ctx, createAction)
		case "3":
			err = a.entityAction(ctx, editAction)
		case "4":
			err = a.entityAction(ctx, deleteAction)
		case "5":
			err = a.reportMenu(ctx)
		case "6":
			return nil
		default:
			a.prompt.Println(msgInvalidChoice)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// entityAction asks for the entity and runs act on its handler. Only input
// failures are returned; everything else is reported to the user.
func (a *App) entityAction(ctx context.Context, act action) error {
	labels := make([]string, len(a.handlers))
	for i, h := range a.handlers {
		labels[i] = h.Label()
	}

	i, ok, err := a.prompt.Choose(act.title, labels, "Sair")
	if errors.Is(err, errInvalidChoice) {
		a.prompt.Println(msgInvalidChoice)
		return nil
	}
	if err != nil || !ok {
		return err
	}

	h := a.handlers[i]
	logger := a.logger.With(
		zap.String("operation", newOperationID()),
		zap.String("action", act.name),
		zap.String("entity", h.Label()),
	)

	a.prompt.Println()
	err = act.run(h, ctx)
	if errors.Is(err, io.EOF) {
		return err
	}
	if err != nil {
		a.reportFailure(logger, act.failure, err)
		return nil
	}
	logger.Info("action completed")
	return nil
}

func (a *App) reportFailure(logger *zap.Logger, failure string, err error) {
	var inputErr *inputError
	switch {
	case errors.As(err, &inputErr):
		logger.Info("input rejected", zap.Error(err))
		a.prompt.Println(inputErr.msg)
	case errors.Is(err, domain.ErrStillReferenced):
		logger.Warn("delete blocked by relationships", zap.Error(err))
		a.prompt.Println(msgStillReferenced)
	case errors.Is(err, domain.ErrNotFound):
		logger.Info("record not found", zap.Error(err))
		a.prompt.Println(msgNotFound)
	case errors.Is(err, domain.ErrInvalidReference):
		logger.Warn("missing referenced record", zap.Error(err))
		a.prompt.Println(msgBadReference)
	case errors.Is(err, domain.ErrAlreadyExists):
		logger.Warn("duplicate record", zap.Error(err))
		a.prompt.Println(msgAlreadyExists)
	default:
		logger.Error("action failed", zap.Error(err))
		a.prompt.Println(failure)
	}
}

func newOperationID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}
