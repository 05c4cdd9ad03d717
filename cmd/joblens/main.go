package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/RohitArisankala/Joblens/internal/api"
	"github.com/RohitArisankala/Joblens/internal/config"
	"github.com/RohitArisankala/Joblens/internal/dashboard"
	"github.com/RohitArisankala/Joblens/internal/session"
	"github.com/RohitArisankala/Joblens/internal/telemetry"
	"github.com/RohitArisankala/Joblens/internal/ui"
	"github.com/RohitArisankala/Joblens/internal/view"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	shutdownTelemetry := telemetry.Setup(context.Background(), "joblens", cfg.TraceEndpoint, cfg.TraceInsecure)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := api.NewClient(cfg.BackendURL, cfg.RequestTimeout)
	store := session.NewStore(cfg.SessionFile)
	prompter := ui.NewPrompter(os.Stdin, os.Stdout)

	// the session starts in its loading state and is restored exactly once
	sess := session.Session{Loading: true}
	if view.Resolve(sess) == view.Loading {
		fmt.Println("restoring session...")
	}
	sess = store.Restore()
	if sess.Authenticated() {
		log.Printf("session restored user=%s role=%s", sess.User.Email, sess.User.Role)
	}

	// applies a dashboard's exit action; logout clears persisted and
	// in-memory state together
	apply := func(action dashboard.Action) (quit bool) {
		switch action {
		case dashboard.ActionQuit:
			return true
		case dashboard.ActionLogout:
			if err := store.Clear(); err != nil {
				log.Printf("clear session: %v", err)
			}
			fmt.Println("logged out")
			sess = session.Logout()
		}
		return false
	}

	for ctx.Err() == nil {
		var quit bool
		switch view.Resolve(sess) {
		case view.Landing:
			next, action := dashboard.NewLanding(client, prompter).Run(ctx)
			quit = action == dashboard.ActionQuit
			if !quit && next.Authenticated() {
				if err := store.Save(next); err != nil {
					log.Printf("persist session: %v", err)
				}
				sess = next
			}
		case view.StudentDashboard:
			quit = apply(dashboard.NewStudent(client, sess, prompter).Run(ctx))
		case view.RecruiterDashboard:
			quit = apply(dashboard.NewRecruiter(client, sess, prompter).Run(ctx))
		case view.AdminDashboard:
			quit = apply(dashboard.NewAdmin(client, sess, prompter).Run(ctx))
		default:
			quit = true
		}
		if quit || prompter.Done() {
			return
		}
	}
}
