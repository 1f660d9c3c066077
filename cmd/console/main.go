package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"fieldservice/internal/adapter/facade"
	"fieldservice/internal/bootstrap"
	"fieldservice/internal/config"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/telemetry"
	"fieldservice/internal/session"

	"github.com/charmbracelet/lipgloss"
	_ "github.com/joho/godotenv/autoload"
)

const usage = `usage: console <command> [flags]

commands:
  login   -u <username> -p <password>   authenticate and load every collection
  logout                                 clear the persisted session
  summary                                dashboard for the persisted session
  list    <clients|users|products|orders|quotes>
  quote   <send|accept|reject> <quote-id>
`

var errNotLoggedIn = errors.New("not logged in, run `console login` first")

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred teardown happens before exit.
func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		return fail("load config: %v", err)
	}

	ctx := context.Background()
	tp, teardown, err := initTracing(ctx, telemetry.Config{
		ServiceName: cfg.ServiceName + "-console",
		Endpoint:    cfg.OTLPEndpoint,
		Probability: cfg.TraceSampleRatio,
	})
	if err != nil {
		return fail("start tracing: %v", err)
	}
	defer func() {
		if err := teardown(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render("stop tracing: "+err.Error()))
		}
	}()

	c, err := bootstrap.Build(ctx, cfg, facade.WithTracer(tp.Tracer("fieldservice/console")))
	if err != nil {
		return fail("build: %v", err)
	}
	state := session.NewState(c.API, c.LoginFlag)

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		err = runLogin(ctx, state, rest)
	case "logout":
		err = state.Logout(ctx)
		if err == nil {
			fmt.Println("Logged out.")
		}
	case "summary":
		err = runSummary(ctx, state)
	case "list":
		err = runList(ctx, state, rest)
	case "quote":
		err = runQuote(ctx, c.API, state, rest)
	default:
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	if err != nil {
		return fail("%s: %v", cmd, err)
	}
	return 0
}

func runLogin(ctx context.Context, state *session.State, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := state.Login(ctx, *username, *password)
	if err != nil && !errors.Is(err, session.ErrInitialLoad) {
		return err
	}
	fmt.Printf("%s %s (%s)\n", titleStyle.Render("Welcome"), user.DisplayName(), user.Role)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}
	printDashboard(state.Dashboard())
	return nil
}

func runSummary(ctx context.Context, state *session.State) error {
	if err := restore(ctx, state); err != nil {
		return err
	}
	printDashboard(state.Dashboard())
	return nil
}

func runList(ctx context.Context, state *session.State, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one collection name")
	}
	if err := restore(ctx, state); err != nil {
		return err
	}

	switch strings.ToLower(args[0]) {
	case "clients":
		printClients(state.Clients())
	case "users":
		printUsers(state.Users())
	case "products":
		printProducts(state.Products())
	case "orders", "service-orders":
		printOrders(state.ServiceOrders())
	case "quotes":
		printQuotes(state.Quotes())
	default:
		return fmt.Errorf("unknown collection %q", args[0])
	}
	return nil
}

func runQuote(ctx context.Context, api *facade.API, state *session.State, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <send|accept|reject> <quote-id>")
	}
	if err := restore(ctx, state); err != nil {
		return err
	}

	var transition func(context.Context, string) (entities.Quote, error)
	switch strings.ToLower(args[0]) {
	case "send":
		transition = api.SendQuote
	case "accept":
		transition = api.AcceptQuote
	case "reject":
		transition = api.RejectQuote
	default:
		return fmt.Errorf("unknown quote action %q", args[0])
	}

	q, err := transition(ctx, args[1])
	if err != nil {
		return err
	}
	fmt.Printf("%s %s is now %s\n", titleStyle.Render("Quote"), q.QuoteNumber, q.Status)
	return nil
}

// restore re-reads the persisted flag; collections are reloaded when it is set.
func restore(ctx context.Context, state *session.State) error {
	if err := state.Restore(ctx); err != nil {
		return err
	}
	if !state.LoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

func fail(format string, args ...any) int {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(format, args...)))
	return 1
}

var initTracing = telemetry.InitTracing

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)
