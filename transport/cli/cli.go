// Package cli runs the interactive menus: the main menu until exit and, after
// a successful login, the role menu until logout.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/cli/console"
	"hotel/transport/cli/router"

	"github.com/rs/zerolog/log"
)

const (
	choiceCreateUser = 1
	choiceLogIn      = 2

	messageUnrecognized = "Unrecognized choice!"
)

const greeting = "\n\n*******************************************************\n" +
	"              User Interface      \t               \n" +
	"*******************************************************\n"

type App struct {
	Config  *config.Config
	Router  *router.Router
	console *console.Console
	otel    otel.Otel
}

func New(cfg *config.Config, r *router.Router, c *console.Console, otel otel.Otel) *App {
	return &App{
		Config:  cfg,
		Router:  r,
		console: c,
		otel:    otel,
	}
}

// Greet prints the banner shown before connecting.
func Greet(w io.Writer) {
	fmt.Fprint(w, greeting+"\n")
}

// Run shows the main menu until the user exits or input is closed. Only a
// fatal failure is returned.
func (a *App) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		a.printMainMenu()

		choice, err := a.console.ReadChoice()
		if err != nil {
			return a.stop(err)
		}

		switch choice {
		case choiceCreateUser:
			err = a.Router.DomainHandlers.Auth.CreateUser(ctx)
		case choiceLogIn:
			err = a.logIn(ctx)
		case constant.MenuChoiceExit:
			return nil
		default:
			a.console.Println(messageUnrecognized)
		}

		if err = a.report(err); err != nil {
			return a.stop(err)
		}
	}
}

func (a *App) logIn(ctx context.Context) error {
	sess, err := a.Router.DomainHandlers.Auth.LogIn(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return a.serve(ctx, sess)
}

// serve runs the role menu of one session until logout.
func (a *App) serve(ctx context.Context, sess *session.Session) error {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Session")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelSessionAttributeKey: sess.ID,
		constant.OtelUserAttributeKey:    sess.UserID,
	})

	for {
		if ctx.Err() != nil {
			return nil
		}

		a.printRoleMenu(sess)

		choice, err := a.console.ReadChoice()
		if err != nil {
			return err //nolint:wrapcheck
		}

		if choice == constant.MenuChoiceLogOut {
			log.Info().Str("session", sess.ID).Msg("logged out")

			return nil
		}

		cmd, ok := a.Router.Find(sess, choice)
		if !ok {
			a.console.Println(messageUnrecognized)

			continue
		}

		if err = a.report(cmd.Run(ctx, sess)); err != nil {
			scope.TraceError(err)

			return err
		}
	}
}

// report prints what an operation failed with and swallows it, unless the
// session has to end.
func (a *App) report(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, console.ErrAborted) {
		return err
	}

	switch {
	case failure.IsUserFacing(err):
		a.console.Println(userMessage(err))

		return nil
	case failure.GetKind(err) == failure.KindFatal:
		return err
	default:
		log.Error().Err(err).Msg("operation failed")
		a.console.Errorln(err.Error())

		return nil
	}
}

// stop turns closed input into a normal end.
func (a *App) stop(err error) error {
	if errors.Is(err, console.ErrAborted) {
		log.Debug().Msg("input closed")

		return nil
	}

	return err
}

func (a *App) printMainMenu() {
	a.console.Println("MAIN MENU")
	a.console.Println("---------")
	a.console.Println("1. Create user")
	a.console.Println("2. Log in")
	a.console.Printf("%d. < EXIT\n", constant.MenuChoiceExit)
}

func (a *App) printRoleMenu(sess *session.Session) {
	a.console.Println("MAIN MENU")
	a.console.Println("---------")

	for _, cmd := range a.Router.Commands(sess) {
		a.console.Printf("%d. %s\n", cmd.Choice, cmd.Label)
	}

	a.console.Println(".........................")
	a.console.Printf("%d. Log out\n", constant.MenuChoiceLogOut)
}

func userMessage(err error) string {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}
