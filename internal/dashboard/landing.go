package dashboard

import (
	"context"

	"github.com/RohitArisankala/Joblens/internal/api"
	"github.com/RohitArisankala/Joblens/internal/models"
	"github.com/RohitArisankala/Joblens/internal/session"
	"github.com/RohitArisankala/Joblens/internal/ui"
)

// Landing is the pre-auth screen. It hands a fresh authenticated session
// back to the main loop on successful login or registration.
type Landing struct {
	api *api.Client
	ui  *ui.Prompter
}

func NewLanding(client *api.Client, prompter *ui.Prompter) *Landing {
	return &Landing{api: client, ui: prompter}
}

func (l *Landing) Run(ctx context.Context) (session.Session, Action) {
	l.ui.Printf("\nJobLens — find verified jobs and build skills recruiters trust\n")
	l.help()

	for {
		verb, _, ok := l.ui.ReadCommand()
		if !ok {
			return session.Session{}, ActionQuit
		}
		switch verb {
		case "":
		case "help":
			l.help()
		case "login":
			if sess, ok := l.login(ctx); ok {
				return sess, ActionNone
			}
		case "register":
			if sess, ok := l.register(ctx); ok {
				return sess, ActionNone
			}
		case "quit", "exit":
			return session.Session{}, ActionQuit
		default:
			l.ui.Printf("unknown command %q (try help)\n", verb)
		}
	}
}

func (l *Landing) help() {
	l.ui.Printf("commands: login, register, quit\n")
}

func (l *Landing) login(ctx context.Context) (session.Session, bool) {
	req := models.LoginRequest{
		Email:    l.ui.Ask("email"),
		Password: l.ui.Ask("password"),
	}
	if err := ui.Validate(req); err != nil {
		l.ui.Printf("error: %v\n", err)
		return session.Session{}, false
	}

	resp, err := l.api.Login(ctx, req)
	if err != nil {
		l.ui.Printf("login failed: %s\n", errText(err))
		return session.Session{}, false
	}

	l.ui.Printf("logged in as %s (%s)\n", req.Email, resp.UserRole)
	return session.Login(resp.AccessToken, models.User{
		ID:    resp.UserID,
		Role:  resp.UserRole,
		Email: req.Email,
	}), true
}

func (l *Landing) register(ctx context.Context) (session.Session, bool) {
	req := models.RegisterRequest{
		Name:     l.ui.Ask("full name"),
		Email:    l.ui.Ask("email"),
		Password: l.ui.Ask("password"),
		Role:     l.ui.AskDefault("role (student/recruiter)", models.RoleStudent),
	}
	if err := ui.Validate(req); err != nil {
		l.ui.Printf("error: %v\n", err)
		return session.Session{}, false
	}

	resp, err := l.api.Register(ctx, req)
	if err != nil {
		l.ui.Printf("registration failed: %s\n", errText(err))
		return session.Session{}, false
	}

	l.ui.Printf("welcome to JobLens, %s\n", req.Name)
	return session.Login(resp.AccessToken, models.User{
		ID:    resp.UserID,
		Role:  resp.UserRole,
		Email: req.Email,
	}), true
}
