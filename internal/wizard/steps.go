// Package wizard implements the configurator's step state machine: a pure
// transition function over a closed action set, with step gating and
// dimension clamping against the catalog envelopes.
package wizard

import "github.com/surmesure/configurator/internal/config"

// Step is one wizard page.
type Step struct {
	Key   string
	Title string
}

// productStep is shared by every family as step 0.
var productStep = Step{Key: "produit", Title: "Type de projet"}

var meubleSteps = []Step{
	productStep,
	{Key: "modele", Title: "Modèle"},
	{Key: "structure", Title: "Structure"},
	{Key: "amenagement", Title: "Aménagement intérieur"},
	{Key: "materiau", Title: "Matériau"},
	{Key: "finitions", Title: "Finitions"},
	{Key: "recapitulatif", Title: "Récapitulatif"},
}

var plancheSteps = []Step{
	productStep,
	{Key: "decoupe", Title: "Découpes"},
	{Key: "chants", Title: "Chants"},
	{Key: "finitions", Title: "Finitions"},
	{Key: "recapitulatif", Title: "Récapitulatif"},
}

var cuisineSteps = []Step{
	productStep,
	{Key: "implantation", Title: "Implantation"},
	{Key: "caissons", Title: "Caissons"},
	{Key: "plan-de-travail", Title: "Plan de travail"},
	{Key: "materiaux", Title: "Matériaux"},
	{Key: "finitions", Title: "Finitions"},
	{Key: "recapitulatif", Title: "Récapitulatif"},
}

// StepsFor returns the ordered step list of a product family.
func StepsFor(f config.Family) []Step {
	switch f {
	case config.FamilyPlanche:
		return plancheSteps
	case config.FamilyCuisine:
		return cuisineSteps
	default:
		return meubleSteps
	}
}
