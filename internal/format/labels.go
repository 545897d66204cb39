package format

import "github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"

var FrequencyLabels = map[model.ExpenseFrequency]string{
	model.FrequencyMonthly:   "Mensile",
	model.FrequencyBimonthly: "Bimestrale",
	model.FrequencyCustom:    "Personalizzata",
}

var RenovationStatusLabels = map[model.RenovationStatus]string{
	model.StatusPlanned:    "Pianificato",
	model.StatusInProgress: "In corso",
	model.StatusCompleted:  "Completato",
	model.StatusOnHold:     "Sospeso",
}

var ChannelLabels = map[model.NotificationChannel]string{
	model.ChannelSMS:      "SMS",
	model.ChannelWhatsApp: "WhatsApp",
}

// ExpenseCategories is the fixed category list offered by the expense form.
var ExpenseCategories = []string{
	"Casa",
	"Alimentari",
	"Utenze",
	"Trasporti",
	"Salute",
	"Istruzione",
	"Benessere",
	"Intrattenimento",
	"Abbigliamento",
	"Altro",
}

// AgendaCategoryLabels maps appointment categories to display names.
var AgendaCategoryLabels = map[string]string{
	"medico":      "Medico",
	"lavoro":      "Lavoro",
	"scuola":      "Scuola",
	"famiglia":    "Famiglia",
	"commissioni": "Commissioni",
	"altro":       "Altro",
}
