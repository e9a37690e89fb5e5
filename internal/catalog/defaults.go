package catalog

// Default returns the built-in catalog. Values mirror the showroom price
// list; the admin settings file can override any subset of them at startup.
func Default() *Catalog {
	return &Catalog{
		Materials: map[string]Material{
			"chene":       {Key: "chene", Name: "Chêne massif", PricePerSqm: 45, EdgePerM: 2.0, Color: "#B8860B", ForCarcass: true, ForFacade: true},
			"hetre":       {Key: "hetre", Name: "Hêtre massif", PricePerSqm: 38, EdgePerM: 1.8, Color: "#DEB887", ForCarcass: true, ForFacade: true},
			"noyer":       {Key: "noyer", Name: "Noyer massif", PricePerSqm: 65, EdgePerM: 2.5, Color: "#654321", ForCarcass: true, ForFacade: true},
			"pin":         {Key: "pin", Name: "Pin", PricePerSqm: 22, EdgePerM: 1.2, Color: "#E8C999", ForCarcass: true},
			"mdf":         {Key: "mdf", Name: "MDF à peindre", PricePerSqm: 18, EdgePerM: 1.0, Color: "#C8B8A0", ForCarcass: true, ForFacade: true},
			"melamine":    {Key: "melamine", Name: "Mélaminé blanc", PricePerSqm: 25, EdgePerM: 1.5, Color: "#F2F2F0", ForCarcass: true, ForFacade: true},
			"stratifie":   {Key: "stratifie", Name: "Stratifié", PricePerSqm: 45, Color: "#9B9B93", ForWorktop: true},
			"bois-massif": {Key: "bois-massif", Name: "Bois massif", PricePerSqm: 80, Color: "#A87C4F", ForWorktop: true},
			"quartz":      {Key: "quartz", Name: "Quartz", PricePerSqm: 250, Color: "#D9D9E0", ForWorktop: true},
		},
		Modules: map[string]ModuleOption{
			"etagere":  {Key: "etagere", Label: "Étagère", BasePrice: 15, DefaultHeight: 19},
			"tiroir":   {Key: "tiroir", Label: "Tiroir", BasePrice: 45, DefaultHeight: 150},
			"penderie": {Key: "penderie", Label: "Tringle penderie", BasePrice: 25, DefaultHeight: 30},
			"niche":    {Key: "niche", Label: "Niche ouverte", BasePrice: 10, DefaultHeight: 300},
			"porte":    {Key: "porte", Label: "Porte", BasePrice: 60, DefaultHeight: 0},
		},
		Hardware: Hardware{
			HingePrice:        3.5,
			SlidePrice:        12,
			ShelfSupportPrice: 1.5,
			HandlePrice:       6,
		},
		Handles: map[string]HandleStyle{
			"bouton":   {Key: "bouton", Label: "Bouton rond"},
			"barre":    {Key: "barre", Label: "Barre inox"},
			"coquille": {Key: "coquille", Label: "Coquille laiton"},
			"sans":     {Key: "sans", Label: "Sans poignée (push)"},
		},
		Finishes: map[string]FinishOption{
			"brut":   {Key: "brut", Label: "Brut (à finir soi-même)", PricePerSqm: 0},
			"huile":  {Key: "huile", Label: "Huilé naturel", PricePerSqm: 8},
			"vernis": {Key: "vernis", Label: "Vernis mat", PricePerSqm: 12},
			"laque":  {Key: "laque", Label: "Laqué (teinte au choix)", PricePerSqm: 18},
		},
		EdgeBandings: map[string]EdgeBandingOption{
			"assorti":   {Key: "assorti", Label: "Chant assorti", PricePerM: 2},
			"abs-blanc": {Key: "abs-blanc", Label: "ABS blanc", PricePerM: 1.5},
			"alu":       {Key: "alu", Label: "Profil aluminium", PricePerM: 3.5},
		},
		Templates: map[string]Template{
			"bibliotheque": {Key: "bibliotheque", Label: "Bibliothèque", HasBack: true},
			"dressing":     {Key: "dressing", Label: "Dressing", HasBack: true},
			"buffet":       {Key: "buffet", Label: "Buffet", HasBack: true, FeetStyle: "rond"},
			"tv":           {Key: "tv", Label: "Meuble TV", HasBack: true, FeetStyle: "incline", SlidingDoors: true},
			"libre":        {Key: "libre", Label: "Création libre", HasBack: true},
		},
		Kitchen: map[string]KitchenCabinet{
			"bas-porte":         {Key: "bas-porte", Label: "Caisson bas 1 porte", Category: KitchenBase, BasePrice: 120, DefaultWidth: 600, WidthOptions: []float64{400, 500, 600, 800}, HasDoor: true},
			"bas-tiroirs":       {Key: "bas-tiroirs", Label: "Caisson bas 3 tiroirs", Category: KitchenBase, BasePrice: 180, DefaultWidth: 600, WidthOptions: []float64{400, 600, 800}, HasDrawer: true},
			"bas-evier":         {Key: "bas-evier", Label: "Caisson sous-évier", Category: KitchenBase, BasePrice: 140, DefaultWidth: 800, WidthOptions: []float64{600, 800, 1200}, HasDoor: true},
			"bas-four":          {Key: "bas-four", Label: "Caisson four encastrable", Category: KitchenBase, BasePrice: 160, DefaultWidth: 600, WidthOptions: []float64{600}},
			"bas-angle":         {Key: "bas-angle", Label: "Caisson bas d'angle", Category: KitchenBase, BasePrice: 210, DefaultWidth: 900, WidthOptions: []float64{900}, HasDoor: true},
			"haut-porte":        {Key: "haut-porte", Label: "Caisson haut 1 porte", Category: KitchenWall, BasePrice: 90, DefaultWidth: 600, WidthOptions: []float64{400, 500, 600, 800}, HasDoor: true},
			"haut-vitre":        {Key: "haut-vitre", Label: "Caisson haut vitré", Category: KitchenWall, BasePrice: 130, DefaultWidth: 600, WidthOptions: []float64{400, 600}, HasDoor: true},
			"haut-hotte":        {Key: "haut-hotte", Label: "Caisson hotte", Category: KitchenWall, BasePrice: 110, DefaultWidth: 600, WidthOptions: []float64{600, 900}},
			"colonne-four":      {Key: "colonne-four", Label: "Colonne four", Category: KitchenTall, BasePrice: 260, DefaultWidth: 600, WidthOptions: []float64{600}, HasDoor: true},
			"colonne-rangement": {Key: "colonne-rangement", Label: "Colonne de rangement", Category: KitchenTall, BasePrice: 240, DefaultWidth: 600, WidthOptions: []float64{400, 600}, HasDoor: true},
			"colonne-frigo":     {Key: "colonne-frigo", Label: "Colonne réfrigérateur", Category: KitchenTall, BasePrice: 280, DefaultWidth: 600, WidthOptions: []float64{600}, HasDoor: true},
		},
		Envelopes: map[string]Envelope{
			"meuble":  {MinWidth: 200, MaxWidth: 3000, MinHeight: 400, MaxHeight: 2800, MinDepth: 200, MaxDepth: 900},
			"planche": {MinWidth: 100, MaxWidth: 2050, MinHeight: 100, MaxHeight: 2800, MinDepth: 8, MaxDepth: 38},
			"cuisine": {MinWidth: 1000, MaxWidth: 6000, MinHeight: 400, MaxHeight: 2800, MinDepth: 300, MaxDepth: 700},
		},
		BoardThicknesses: []float64{8, 10, 15, 18, 22, 25, 30, 38},
	}
}
