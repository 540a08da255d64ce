// Package main is the terminal front end for the Staffi backend. It reuses
// the same session, guard, and transport layers a graphical front end would,
// so a 401 in any command clears the session and records the login redirect.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/staffihq/staffi-go/internal/app"
	"github.com/staffihq/staffi-go/internal/guard"
)

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	a, shutdown, err := app.Bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(context.Background()) }()

	switch args[0] {
	case "login":
		return cmdLogin(ctx, a, args[1:])
	case "logout":
		return cmdLogout(a)
	case "whoami":
		return cmdWhoami(a)
	case "open":
		return cmdOpen(a, args[1:])
	case "employees":
		return cmdEmployees(ctx, a)
	case "dashboard":
		return cmdDashboard(ctx, a)
	case "audit-logs":
		return cmdAuditLogs(ctx, a)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: staffi <command>

commands:
  login <email>   authenticate and persist the session
  logout          clear the persisted session
  whoami          show the logged-in user
  open <path>     navigate to a path through the guard table
  employees       list employees
  dashboard       show dashboard statistics
  audit-logs      show the audit trail (ADMIN only)`)
}

func cmdLogin(ctx context.Context, a *app.App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: staffi login <email>")
	}
	email := args[0]

	password := os.Getenv("STAFFI_PASSWORD")
	if password == "" {
		fmt.Fprint(os.Stderr, "password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	resp, err := a.Client.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("logged in as %s %s (%s)\n", resp.FirstName, resp.LastName, resp.Role)
	return nil
}

func cmdLogout(a *app.App) error {
	if err := a.Client.Auth.Logout(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func cmdWhoami(a *app.App) error {
	if !a.Session.IsAuthenticated() {
		return fmt.Errorf("not logged in")
	}
	profile, ok := a.Session.Profile()
	if !ok {
		return fmt.Errorf("session has a token but no profile, log in again")
	}
	return printJSON(profile)
}

func cmdOpen(a *app.App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: staffi open <path>")
	}

	d := a.Router.Go(args[0])
	if !d.Allow {
		fmt.Printf("redirected to %s\n", a.History.Current().URL())
		return nil
	}
	fmt.Printf("at %s\n", a.History.Current().URL())
	return nil
}

func cmdEmployees(ctx context.Context, a *app.App) error {
	if d := a.Router.Go("/employees"); !d.Allow {
		return fmt.Errorf("access denied, redirected to %s", guard.LoginPath)
	}
	employees, err := a.Client.Employees.List(ctx)
	if err != nil {
		return err
	}
	return printJSON(employees)
}

func cmdDashboard(ctx context.Context, a *app.App) error {
	if d := a.Router.Go("/admin/dashboard"); !d.Allow {
		return fmt.Errorf("access denied, redirected to %s", d.RedirectPath)
	}
	stats, err := a.Client.Dashboard.Stats(ctx)
	if err != nil {
		return err
	}
	return printJSON(stats)
}

func cmdAuditLogs(ctx context.Context, a *app.App) error {
	if d := a.Router.Go("/admin/audit-logs"); !d.Allow {
		return fmt.Errorf("access denied, redirected to %s", d.RedirectPath)
	}
	logs, err := a.Client.AuditLogs.List(ctx)
	if err != nil {
		return err
	}
	return printJSON(logs)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
