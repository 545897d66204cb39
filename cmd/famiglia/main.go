package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/config"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/controller"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/database"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/logging"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/session"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/shopping"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/store"
)

const usage = `Uso: famiglia <comando> [opzioni]

Comandi:
  login --email <email> --password <password>
  logout
  whoami
  dashboard [--from yyyy-mm-dd] [--to yyyy-mm-dd] [--group-by month|week] [--charts]
  members [add|delete] ...
  expenses [add|toggle|delete|history] ...
  renovation [summary]
  agenda [--filter all|today|week|month] [--past]
  settings [test] ...
  shopping [add|toggle|remove|clear|complete] ...
`

// app bundles the wiring every command needs.
type app struct {
	cfg      *config.Config
	sessions *session.Manager
	auth     *api.AuthService
	client   *api.Client

	members      *controller.MembersController
	expenses     *controller.ExpensesController
	renovation   *controller.RenovationController
	agenda       *controller.AgendaController
	settings     *controller.SettingsController
	dashboard    *controller.DashboardController
	shoppingList *controller.ShoppingController

	renovationAPI *api.RenovationService
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Errore:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logging.Setup(cfg.LogLevel)

	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	db, err := database.Open(cfg.StatePath)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := session.NewManager(store.NewSessionStore(db), log)
	if err != nil {
		return err
	}
	client := api.NewClient(cfg.APIBaseURL, sessions)
	auth := api.NewAuthService(client)

	expensesAPI := api.NewExpensesService(client)
	renovationAPI := api.NewRenovationService(client)
	shoppingSvc := shopping.NewService(store.NewShoppingStore(db), expensesAPI, log)

	a := &app{
		cfg:      cfg,
		sessions: sessions,
		auth:     auth,
		client:   client,

		members:      controller.NewMembersController(api.NewMembersService(client), log),
		expenses:     controller.NewExpensesController(expensesAPI, log),
		renovation:   controller.NewRenovationController(renovationAPI, log),
		agenda:       controller.NewAgendaController(api.NewAppointmentsService(client), log),
		settings:     controller.NewSettingsController(api.NewSettingsService(client), log),
		dashboard:    controller.NewDashboardController(api.NewDashboardService(client), log),
		shoppingList: controller.NewShoppingController(shoppingSvc, log),

		renovationAPI: renovationAPI,
	}

	ctx := context.Background()
	command, rest := args[0], args[1:]

	if command == "login" {
		return a.cmdLogin(ctx, rest)
	}

	// Every other command runs behind the auth gate, mirroring the
	// protected-route redirect.
	a.sessions.Bootstrap(ctx, a.auth)
	if err := a.sessions.Gate(); err != nil {
		if errors.Is(err, session.ErrLoginRequired) {
			fmt.Println("Sessione non attiva. Accedi con: famiglia login --email ... --password ...")
			os.Exit(1)
		}
		return err
	}

	switch command {
	case "logout":
		a.sessions.Logout(ctx, a.auth)
		fmt.Println("Disconnesso.")
		return nil
	case "whoami":
		user := a.sessions.User()
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	case "dashboard":
		return a.cmdDashboard(ctx, rest)
	case "members":
		return a.cmdMembers(ctx, rest)
	case "expenses":
		return a.cmdExpenses(ctx, rest)
	case "renovation":
		return a.cmdRenovation(ctx, rest)
	case "agenda":
		return a.cmdAgenda(ctx, rest)
	case "settings":
		return a.cmdSettings(ctx, rest)
	case "shopping":
		return a.cmdShopping(ctx, rest)
	default:
		fmt.Print(usage)
		return fmt.Errorf("comando sconosciuto: %s", command)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("login richiede --email e --password")
	}

	a.sessions.Bootstrap(ctx, a.auth)
	if err := a.sessions.GateLogin(); err != nil {
		fmt.Printf("Sei già autenticato come %s.\n", a.sessions.User().Email)
		return nil
	}

	user, err := a.sessions.Login(ctx, a.auth, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Benvenuto, %s!\n", user.Name)
	return nil
}

func parseChannel(s string) (model.NotificationChannel, error) {
	ch := model.NotificationChannel(s)
	if s == "" {
		return model.ChannelWhatsApp, nil
	}
	if !ch.Valid() {
		return "", fmt.Errorf("canale non valido: %s (SMS o WHATSAPP)", s)
	}
	return ch, nil
}
