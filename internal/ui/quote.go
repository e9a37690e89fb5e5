package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/surmesure/configurator/internal/pricing"
	"github.com/surmesure/configurator/internal/quote"
)

// showQuoteDialog collects the contact details and submits the quote
// request. A failed submission keeps the configuration and can simply
// be retried.
func (a *App) showQuoteDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Nom et prénom")

	emailEntry := widget.NewEntry()
	emailEntry.SetPlaceHolder("adresse@exemple.fr")

	phoneEntry := widget.NewEntry()
	phoneEntry.SetPlaceHolder("06 12 34 56 78")

	messageEntry := widget.NewMultiLineEntry()
	messageEntry.SetPlaceHolder("Précisions sur votre projet (facultatif)")

	form := dialog.NewForm("Demande de devis", "Envoyer", "Annuler",
		[]*widget.FormItem{
			widget.NewFormItem("Nom", nameEntry),
			widget.NewFormItem("Email", emailEntry),
			widget.NewFormItem("Téléphone", phoneEntry),
			widget.NewFormItem("Message", messageEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			contact := quote.Contact{
				Name:    strings.TrimSpace(nameEntry.Text),
				Email:   strings.TrimSpace(emailEntry.Text),
				Phone:   strings.TrimSpace(phoneEntry.Text),
				Message: strings.TrimSpace(messageEntry.Text),
			}
			if contact.Name == "" || contact.Email == "" {
				dialog.ShowError(fmt.Errorf("le nom et l'email sont obligatoires"), a.window)
				return
			}
			a.submitQuote(contact)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(450, 350))
	form.Show()
}

func (a *App) submitQuote(contact quote.Contact) {
	cfg, err := quote.ConfigFromEnv()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	client := quote.NewClient(cfg)
	req := quote.BuildRequest(contact, a.state.Config, pricing.Price(a.cat, a.state.Config))

	go func() {
		err := client.Submit(context.Background(), req)
		fyne.Do(func() {
			switch {
			case errors.Is(err, quote.ErrConnectivity):
				dialog.ShowError(fmt.Errorf(
					"le serveur de devis est injoignable ; vérifiez votre connexion et réessayez"),
					a.window)
			case err != nil:
				dialog.ShowError(err, a.window)
			default:
				dialog.ShowInformation("Demande envoyée",
					"Votre demande de devis a bien été transmise.\nNous revenons vers vous sous 48 h.",
					a.window)
			}
		})
	}()
}
