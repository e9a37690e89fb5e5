package catalog

// Settings is the admin-editable override set loaded from the settings
// store. Every field is optional: a nil map or zero struct leaves the
// built-in catalog table untouched, so a partially-populated (or older)
// settings file degrades gracefully instead of failing.
type Settings struct {
	Materials    map[string]Material          `json:"materials,omitempty"`
	Modules      map[string]ModuleOption      `json:"modules,omitempty"`
	Hardware     *Hardware                    `json:"hardware,omitempty"`
	Handles      map[string]HandleStyle       `json:"handles,omitempty"`
	Finishes     map[string]FinishOption      `json:"finishes,omitempty"`
	EdgeBandings map[string]EdgeBandingOption `json:"edge_bandings,omitempty"`
	Templates    map[string]Template          `json:"templates,omitempty"`
	Kitchen      map[string]KitchenCabinet    `json:"kitchen,omitempty"`
	Envelopes    map[string]Envelope          `json:"envelopes,omitempty"`

	BoardThicknesses []float64 `json:"board_thicknesses,omitempty"`

	// UI label overrides keyed by label identifier.
	Labels map[string]string `json:"labels,omitempty"`
}

// Apply overlays the settings onto a catalog. Entry-level merge: an entry
// present in the settings replaces the default entry of the same key,
// defaults without an override are kept.
func (s Settings) Apply(c *Catalog) {
	mergeMap(c.Materials, s.Materials)
	mergeMap(c.Modules, s.Modules)
	mergeMap(c.Handles, s.Handles)
	mergeMap(c.Finishes, s.Finishes)
	mergeMap(c.EdgeBandings, s.EdgeBandings)
	mergeMap(c.Templates, s.Templates)
	mergeMap(c.Kitchen, s.Kitchen)
	mergeMap(c.Envelopes, s.Envelopes)
	if s.Hardware != nil {
		c.Hardware = *s.Hardware
	}
	if len(s.BoardThicknesses) > 0 {
		c.BoardThicknesses = append([]float64(nil), s.BoardThicknesses...)
	}
}

func mergeMap[K comparable, V any](dst map[K]V, src map[K]V) {
	for k, v := range src {
		dst[k] = v
	}
}
