package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/controller"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/derive"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/format"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

func renderFieldErrors(fe controller.FieldErrors) {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Printf("  %s: %s\n", field, fe[field])
	}
}

func renderDashboard(summary *model.DashboardSummary, trend []model.TrendPoint) {
	if summary == nil {
		return
	}
	fmt.Println("== Riepilogo ==")
	if summary.Period.From != "" || summary.Period.To != "" {
		fmt.Printf("Periodo: %s - %s\n", summary.Period.From, summary.Period.To)
	}
	fmt.Printf("Entrate mensili:  %s (stipendi %s, extra %s, %d membri)\n",
		format.Euro(summary.Income.Total),
		format.Euro(summary.Income.TotalSalaries),
		format.Euro(summary.Income.TotalExtraIncomes),
		summary.Income.MemberCount)
	fmt.Printf("Uscite mensili:   %s (%d spese)\n",
		format.Euro(summary.Expenses.TotalMonthly), summary.Expenses.Count)
	fmt.Printf("Bilancio:         %s\n", format.Euro(summary.Balance))
	fmt.Printf("Ristrutturazione: pagato %s su %s, restano %s\n",
		format.Euro(summary.Renovation.TotalPaid),
		format.Euro(summary.Renovation.TotalCost),
		format.Euro(summary.Renovation.TotalRemaining))

	if len(summary.Expenses.ByCategory) > 0 {
		fmt.Println("\nUscite per categoria:")
		for _, c := range summary.Expenses.ByCategory {
			fmt.Printf("  %-15s %s\n", c.Category, format.Euro(c.Amount))
		}
	}

	if len(trend) > 0 {
		fmt.Println("\nTrend:")
		for _, p := range trend {
			fmt.Printf("  %-10s entrate %s  uscite %s  bilancio %s\n",
				p.Label, format.Euro(p.Income), format.Euro(p.Expenses), format.Euro(p.Balance))
		}
	}
}

func renderMembers(members []model.FamilyMember) {
	if len(members) == 0 {
		fmt.Println("Nessun membro registrato.")
		return
	}
	for _, m := range members {
		fmt.Printf("%s  %s", m.ID, m.Name)
		if m.Role != "" {
			fmt.Printf(" (%s)", m.Role)
		}
		fmt.Printf("  stipendio %s", format.Euro(m.Salary))
		if m.Phone != "" {
			fmt.Printf("  tel %s", m.Phone)
		}
		fmt.Println()
		for _, inc := range m.ExtraIncomes {
			fmt.Printf("    + %s: %s\n", inc.Name, format.Euro(inc.Amount))
		}
		fmt.Printf("    totale mensile: %s\n", format.Euro(derive.MemberMonthlyIncome(m)))
	}
	fmt.Printf("\nEntrate famiglia: %s al mese\n", format.Euro(derive.HouseholdMonthlyIncome(members)))
}

func renderExpenses(c *controller.ExpensesController) {
	groups := c.Groups()
	if len(groups) == 0 {
		fmt.Println("Nessuna spesa attiva.")
	}
	for _, g := range groups {
		fmt.Printf("== %s (%s/mese) ==\n", g.Category, format.Number(g.MonthlyTotal))
		for _, e := range g.Expenses {
			fmt.Printf("  %s  %-25s %10s  %s", e.ID, e.Name, format.Euro(e.Amount), format.FrequencyLabels[e.Frequency])
			if e.DayOfMonth != nil {
				fmt.Printf("  giorno %d", *e.DayOfMonth)
			}
			fmt.Println()
		}
	}
	fmt.Printf("\nTotale mensile attivo: %s\n", format.Euro(c.MonthlyTotal()))

	if inactive := c.Inactive(); len(inactive) > 0 {
		fmt.Println("\nSospese:")
		for _, e := range inactive {
			fmt.Printf("  %s  %-25s %10s\n", e.ID, e.Name, format.Euro(e.Amount))
		}
	}
}

func renderHistoryMonths(months []model.HistoryMonth) {
	if len(months) == 0 {
		fmt.Println("Nessuno storico disponibile.")
		return
	}
	for _, m := range months {
		label := format.Month(time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.Local))
		fmt.Printf("  %s %d: %d spese, %s\n", label, m.Year, m.Count, format.Euro(m.Total))
	}
}

func renderHistoryExpenses(month, year int, expenses []model.Expense) {
	label := format.Month(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local))
	fmt.Printf("== Storico %s %d ==\n", label, year)
	if len(expenses) == 0 {
		fmt.Println("Nessuna spesa in questo mese.")
		return
	}
	var total float64
	for _, e := range expenses {
		fmt.Printf("  %-30s %10s  %s\n", e.Name, format.Euro(e.Amount), e.Category)
		total += e.Amount
	}
	fmt.Printf("Totale: %s\n", format.Euro(total))
}

func renderRenovation(c *controller.RenovationController) {
	projects := c.Projects()
	if len(projects) == 0 {
		fmt.Println("Nessun progetto di ristrutturazione.")
		return
	}
	for _, p := range projects {
		fmt.Printf("%s  %s  [%s]  pagato %.0f%%\n",
			p.ID, p.Name, format.RenovationStatusLabels[p.Status], c.PercentPaid(p))
		if p.Company != "" {
			fmt.Printf("    ditta: %s\n", p.Company)
		}
		if !c.Expanded(p.ID) {
			continue
		}
		for _, item := range p.Items {
			fmt.Printf("    %s  %-25s costo %s  pagato %s  restano %s\n",
				item.ID, item.Name,
				format.Euro(item.TotalPrice), format.Euro(item.PaidAmount), format.Euro(item.Remaining))
		}
		fmt.Printf("    totale: %s, pagato %s\n",
			format.Euro(derive.ProjectTotalCost(p)), format.Euro(derive.ProjectTotalPaid(p)))
	}
}

func renderRenovationSummary(s *model.RenovationSummary) {
	fmt.Println("== Ristrutturazione ==")
	for _, p := range s.Projects {
		fmt.Printf("  %-25s [%s]  %d voci  pagato %s su %s\n",
			p.Name, format.RenovationStatusLabels[p.Status], p.ItemCount,
			format.Euro(p.TotalPaid), format.Euro(p.TotalCost))
	}
	fmt.Printf("Totale: %s, pagato %s, restano %s\n",
		format.Euro(s.Totals.TotalCost), format.Euro(s.Totals.TotalPaid), format.Euro(s.Totals.TotalRemaining))
}

func renderAgenda(c *controller.AgendaController) {
	groups := c.Groups()
	if len(groups) == 0 {
		fmt.Println("Nessun appuntamento in programma.")
	}
	now := time.Now()
	for _, g := range groups {
		fmt.Printf("== %s ==\n", format.GroupLabel(g.Day, now))
		for _, a := range g.Appointments {
			renderAppointment(a)
		}
	}

	if c.ShowPast() {
		past := c.Past()
		if len(past) > 0 {
			fmt.Println("\n== Passati ==")
			for _, a := range past {
				renderAppointment(a)
			}
		}
	}
}

func renderAppointment(a model.Appointment) {
	fmt.Printf("  %s  %s  %s", a.ID, format.Clock(a.StartDate), a.Title)
	if label, ok := format.AgendaCategoryLabels[a.Category]; ok {
		fmt.Printf("  [%s]", label)
	} else if a.Category != "" {
		fmt.Printf("  [%s]", a.Category)
	}
	if a.Member != nil {
		fmt.Printf("  con %s", a.Member.Name)
	}
	fmt.Println()
	for _, n := range a.Notifications {
		status := "in attesa"
		if n.Sent {
			status = "inviata"
		}
		fmt.Printf("      promemoria %d min prima via %s a %s (%s)\n",
			n.MinutesBefore, format.ChannelLabels[n.Channel], n.RecipientPhone, status)
	}
}

func renderSettings(s *model.NotificationSettings) {
	if s == nil {
		return
	}
	fmt.Println("== Impostazioni notifiche ==")
	phone := s.DefaultPhone
	if phone == "" {
		phone = "(non impostato)"
	}
	fmt.Printf("Telefono predefinito: %s\n", phone)
	fmt.Printf("Canale predefinito:   %s\n", format.ChannelLabels[s.DefaultChannel])
	fmt.Printf("Preavviso:            %d minuti\n", s.DefaultMinutes)
	fmt.Printf("Fuso orario:          %s\n", s.Timezone)
}

func renderShopping(c *controller.ShoppingController) {
	items := c.Items()
	if len(items) == 0 {
		fmt.Println("Lista della spesa vuota.")
		return
	}
	unchecked, checked := c.Counts()
	fmt.Printf("== Lista della spesa (%d da prendere, %d nel carrello) ==\n", unchecked, checked)
	for _, item := range items {
		mark := " "
		if item.Checked {
			mark = "x"
		}
		fmt.Printf("  [%s] %s  %s\n", mark, item.ID, item.Text)
	}
}
