package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/charts"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/controller"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/derive"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

func (a *app) cmdDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	from := fs.String("from", "", "inizio periodo (yyyy-mm-dd)")
	to := fs.String("to", "", "fine periodo (yyyy-mm-dd)")
	groupBy := fs.String("group-by", "month", "raggruppamento trend (month|week)")
	withCharts := fs.Bool("charts", false, "esporta i grafici PNG")
	fs.Parse(args)

	if err := a.dashboard.Load(ctx, *from, *to, *groupBy); err != nil {
		return fmt.Errorf("%s", a.dashboard.Message())
	}
	renderDashboard(a.dashboard.Summary(), a.dashboard.Trend())

	if *withCharts {
		if path, err := charts.TrendPNG(a.dashboard.Trend(), a.cfg.ChartDir); err == nil {
			fmt.Println("Grafico trend:", path)
		}
		if summary := a.dashboard.Summary(); summary != nil && len(summary.Expenses.ByCategory) > 0 {
			if path, err := charts.CategoryPNG(summary.Expenses.ByCategory, a.cfg.ChartDir); err == nil {
				fmt.Println("Grafico categorie:", path)
			}
		}
	}
	return nil
}

func (a *app) cmdMembers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if err := a.members.Load(ctx); err != nil {
			return fmt.Errorf("%s", a.members.Message())
		}
		renderMembers(a.members.Members())
		return nil
	}

	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("members add", flag.ExitOnError)
		name := fs.String("name", "", "nome")
		role := fs.String("role", "", "ruolo")
		phone := fs.String("phone", "", "telefono")
		salary := fs.String("salary", "0", "stipendio mensile")
		fs.Parse(args[1:])

		a.members.OpenCreate()
		fe, err := a.members.Submit(ctx, controller.MemberForm{
			Name: *name, Role: *role, Phone: *phone, Salary: *salary,
		})
		if err != nil {
			return fmt.Errorf("%s", a.members.Message())
		}
		if !fe.Ok() {
			renderFieldErrors(fe)
			return nil
		}
		fmt.Println("Membro aggiunto.")
		renderMembers(a.members.Members())
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("members delete richiede l'id")
		}
		if err := a.members.Load(ctx); err != nil {
			return fmt.Errorf("%s", a.members.Message())
		}
		target, ok := findMember(a.members.Members(), args[1])
		if !ok {
			return fmt.Errorf("membro non trovato: %s", args[1])
		}
		a.members.OpenDelete(target)
		if err := a.members.ConfirmDelete(ctx); err != nil {
			return fmt.Errorf("%s", a.members.Message())
		}
		fmt.Println("Membro eliminato.")
		return nil

	default:
		return fmt.Errorf("sottocomando sconosciuto: members %s", args[0])
	}
}

func (a *app) cmdExpenses(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if err := a.expenses.Load(ctx); err != nil {
			return fmt.Errorf("%s", a.expenses.Message())
		}
		renderExpenses(a.expenses)
		return nil
	}

	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("expenses add", flag.ExitOnError)
		name := fs.String("name", "", "nome spesa")
		amount := fs.String("amount", "", "importo")
		frequency := fs.String("frequency", "MONTHLY", "frequenza (MONTHLY|BIMONTHLY|CUSTOM)")
		category := fs.String("category", "", "categoria")
		day := fs.String("day", "", "giorno del mese (1-31)")
		fs.Parse(args[1:])

		a.expenses.OpenCreate()
		fe, err := a.expenses.Submit(ctx, controller.ExpenseForm{
			Name:       *name,
			Amount:     *amount,
			Frequency:  model.ExpenseFrequency(*frequency),
			Category:   *category,
			DayOfMonth: *day,
			IsActive:   true,
		})
		if err != nil {
			return fmt.Errorf("%s", a.expenses.Message())
		}
		if !fe.Ok() {
			renderFieldErrors(fe)
			return nil
		}
		fmt.Println("Spesa aggiunta.")
		return nil

	case "toggle":
		if len(args) < 2 {
			return fmt.Errorf("expenses toggle richiede l'id")
		}
		if err := a.expenses.Load(ctx); err != nil {
			return fmt.Errorf("%s", a.expenses.Message())
		}
		for _, e := range a.expenses.Expenses() {
			if e.ID == args[1] {
				if err := a.expenses.ToggleActive(ctx, e); err != nil {
					return fmt.Errorf("%s", a.expenses.Message())
				}
				fmt.Println("Stato aggiornato.")
				return nil
			}
		}
		return fmt.Errorf("spesa non trovata: %s", args[1])

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("expenses delete richiede l'id")
		}
		if err := a.expenses.Load(ctx); err != nil {
			return fmt.Errorf("%s", a.expenses.Message())
		}
		for _, e := range a.expenses.Expenses() {
			if e.ID == args[1] {
				a.expenses.OpenDelete(e)
				if err := a.expenses.ConfirmDelete(ctx); err != nil {
					return fmt.Errorf("%s", a.expenses.Message())
				}
				fmt.Println("Spesa eliminata.")
				return nil
			}
		}
		return fmt.Errorf("spesa non trovata: %s", args[1])

	case "history":
		if len(args) >= 3 {
			month, err1 := strconv.Atoi(args[1])
			year, err2 := strconv.Atoi(args[2])
			if err1 != nil || err2 != nil {
				return fmt.Errorf("history richiede mese e anno numerici")
			}
			if err := a.expenses.LoadHistoryMonth(ctx, month, year); err != nil {
				return fmt.Errorf("%s", a.expenses.Message())
			}
			renderHistoryExpenses(month, year, a.expenses.HistoryExpenses())
			return nil
		}
		if err := a.expenses.LoadHistory(ctx); err != nil {
			return fmt.Errorf("%s", a.expenses.Message())
		}
		renderHistoryMonths(a.expenses.HistoryMonths())
		return nil

	default:
		return fmt.Errorf("sottocomando sconosciuto: expenses %s", args[0])
	}
}

func (a *app) cmdRenovation(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "summary" {
		summary, err := a.renovationAPI.Summary(ctx)
		if err != nil {
			return err
		}
		renderRenovationSummary(summary)
		return nil
	}

	if err := a.renovation.Load(ctx); err != nil {
		return fmt.Errorf("%s", a.renovation.Message())
	}
	// The terminal view renders every project expanded.
	for _, p := range a.renovation.Projects() {
		a.renovation.ToggleExpanded(p.ID)
	}
	renderRenovation(a.renovation)
	return nil
}

func (a *app) cmdAgenda(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("agenda", flag.ExitOnError)
	filter := fs.String("filter", "all", "filtro (all|today|week|month)")
	past := fs.Bool("past", false, "mostra anche gli appuntamenti passati")
	fs.Parse(args)

	if err := a.agenda.Load(ctx); err != nil {
		return fmt.Errorf("%s", a.agenda.Message())
	}
	a.agenda.SetFilter(derive.RangeFilter(*filter))
	if *past {
		a.agenda.TogglePast()
	}
	renderAgenda(a.agenda)
	return nil
}

func (a *app) cmdSettings(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "test" {
		fs := flag.NewFlagSet("settings test", flag.ExitOnError)
		phone := fs.String("phone", "", "numero di telefono")
		channel := fs.String("channel", "", "canale (SMS|WHATSAPP)")
		fs.Parse(args[1:])

		ch, err := parseChannel(*channel)
		if err != nil {
			return err
		}
		if err := a.settings.SendTest(ctx, *phone, ch); err != nil {
			return fmt.Errorf("%s", a.settings.TestMessage())
		}
		fmt.Println(a.settings.TestMessage())
		return nil
	}

	if err := a.settings.Load(ctx); err != nil {
		return fmt.Errorf("%s", a.settings.Message())
	}
	renderSettings(a.settings.Settings())
	return nil
}

func (a *app) cmdShopping(ctx context.Context, args []string) error {
	if err := a.shoppingList.Load(); err != nil {
		return err
	}

	if len(args) == 0 {
		renderShopping(a.shoppingList)
		return nil
	}

	switch args[0] {
	case "list":
		renderShopping(a.shoppingList)
		return nil
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("shopping add richiede il prodotto")
		}
		if err := a.shoppingList.Add(args[1]); err != nil {
			return err
		}
	case "toggle":
		if len(args) < 2 {
			return fmt.Errorf("shopping toggle richiede l'id")
		}
		if err := a.shoppingList.Toggle(args[1]); err != nil {
			return err
		}
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("shopping remove richiede l'id")
		}
		if err := a.shoppingList.Remove(args[1]); err != nil {
			return err
		}
	case "clear":
		if err := a.shoppingList.Clear(); err != nil {
			return err
		}
	case "complete":
		fs := flag.NewFlagSet("shopping complete", flag.ExitOnError)
		total := fs.String("total", "", "totale speso")
		note := fs.String("note", "", "nota opzionale")
		fs.Parse(args[1:])

		a.shoppingList.OpenComplete()
		fe, err := a.shoppingList.Complete(ctx, *total, *note)
		if err != nil {
			return fmt.Errorf("%s", a.shoppingList.Message())
		}
		if !fe.Ok() {
			renderFieldErrors(fe)
			return nil
		}
		fmt.Println(a.shoppingList.Message())
	default:
		return fmt.Errorf("sottocomando sconosciuto: shopping %s", args[0])
	}

	renderShopping(a.shoppingList)
	return nil
}

func findMember(members []model.FamilyMember, id string) (model.FamilyMember, bool) {
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}
	return model.FamilyMember{}, false
}
