package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"futbolya/internal/api"
	"futbolya/internal/config"
	"futbolya/internal/modules/auth"
	"futbolya/internal/modules/business"
	"futbolya/internal/modules/catalog"
	"futbolya/internal/modules/coupons"
	"futbolya/internal/modules/pitches"
	"futbolya/internal/modules/reservations"
	"futbolya/internal/modules/users"
	"futbolya/internal/notify"
	"futbolya/internal/session"
)

// app wires the whole client: config -> session -> api -> entity services.
// Every command goes through these shared pieces; none talks to storage or
// the network on its own.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	bus      *notify.Bus
	notices  <-chan notify.Notice
	sessions *session.Manager

	auth         *auth.Service
	pitches      *pitches.Service
	reservations *reservations.Service
	business     *business.Service
	users        *users.Service
	catalog      *catalog.Service
	coupons      *coupons.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg)
	bus := notify.NewBus()
	notices := bus.Subscribe()

	sessions := session.NewManager(session.NewFileStore(cfg.SessionFile), log)
	sessions.OnSessionLost(func(err error) {
		bus.Error("your session is invalid and has been closed, please log in again")
	})

	client := api.NewClient(cfg.APIBaseURL,
		api.WithTokenSource(sessions),
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithLogger(log),
		api.WithUnauthorizedHandler(func() {
			_ = sessions.Logout()
			bus.Error("your session has expired, please log in again")
		}),
	)

	return &app{
		cfg:          cfg,
		log:          log,
		bus:          bus,
		notices:      notices,
		sessions:     sessions,
		auth:         auth.NewService(client, sessions, log),
		pitches:      pitches.NewService(client, log),
		reservations: reservations.NewService(client, log),
		business:     business.NewService(client, sessions, log),
		users:        users.NewService(client, log),
		catalog:      catalog.NewService(client, log),
		coupons:      coupons.NewService(client, log),
	}, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	err = a.dispatch(ctx, os.Args[1], os.Args[2:])
	a.flushNotices()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(1)
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, args)
	case "register":
		return a.cmdRegister(ctx, args)
	case "logout":
		return a.cmdLogout()
	case "whoami":
		return a.cmdWhoami()
	case "pitches":
		return a.cmdPitches(ctx, args)
	case "availability":
		return a.cmdAvailability(ctx, args)
	case "book":
		return a.cmdBook(ctx, args)
	case "reservations":
		return a.cmdReservations(ctx, args)
	case "business":
		return a.cmdBusiness(ctx, args)
	case "users":
		return a.cmdUsers(ctx, args)
	case "categories":
		return a.cmdCategories(ctx, args)
	case "localities":
		return a.cmdLocalities(ctx, args)
	case "coupons":
		return a.cmdCoupons(ctx, args)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// flushNotices drains and prints whatever the services published during
// the command. Notices are the toast layer of the terminal UI.
func (a *app) flushNotices() {
	for {
		select {
		case n := <-a.notices:
			switch n.Level {
			case notify.LevelError:
				fmt.Fprintln(os.Stderr, "! "+n.Message)
			case notify.LevelSuccess:
				fmt.Println("+ " + n.Message)
			default:
				fmt.Println("- " + n.Message)
			}
		default:
			return
		}
	}
}

// describe turns any error into the message a person should read. API
// failure kinds each get their own wording; nothing ever reaches the user
// as a bare status code.
func describe(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case api.KindUnauthorized:
			return "you must be logged in to do that"
		case api.KindForbidden:
			return "you do not have permission to do that"
		case api.KindNotFound:
			return "not found: " + apiErr.Message
		case api.KindConflict:
			return "conflict: " + apiErr.Message
		case api.KindValidation:
			msg := "invalid input"
			for _, f := range apiErr.Fields {
				if f.Field != "" {
					msg += fmt.Sprintf("\n  %s: %s", f.Field, f.Message)
				} else {
					msg += "\n  " + f.Message
				}
			}
			return msg
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "unexpected error, please try again"
	}
	if errors.Is(err, session.ErrNotLoggedIn) {
		return "you must be logged in to do that"
	}
	return err.Error()
}

func usage() {
	fmt.Fprint(os.Stderr, `futbolya - book sports pitches from your terminal

usage: futbolya <command> [flags]

session:
  login         -email -password
  register      -name [-surname] -email -password [-category]
  logout
  whoami

booking:
  pitches       list [-active] [-business <id>] | get -id | add | update | remove
  availability  -pitch <id> -date YYYY-MM-DD
  book          -pitch <id> -date YYYY-MM-DD -hour HH
  reservations  mine | business [-id <id>] | status -id -status | cancel -id

management:
  business      list | get -id | mine | add | update | activate -id | deactivate -id | remove -id
  users         list | get -id | update -id | remove -id
  categories    list | add -name | update -id -name | remove -id
  localities    list | add -name | update -id -name | remove -id
  coupons       list | get -id | add | update -id | remove -id

configuration comes from the environment (or a .env file):
  FUTBOLYA_API_URL, FUTBOLYA_SESSION_FILE, HTTP_TIMEOUT, LOG_LEVEL, APP_ENV
`)
}
