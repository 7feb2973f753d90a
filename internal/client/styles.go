package client

// Style describes one portrait style offered by the backend.
// It mirrors the server catalog so the picker works before the first fetch.
type Style struct {
	ID          string
	Name        string
	Credits     int // cost per render
	Description string
}

// StyleCatalog returns the static style list in display order.
func StyleCatalog() []Style {
	return []Style{
		{ID: "classic", Name: "Classic Portrait", Credits: 1,
			Description: "Studio lighting, painterly finish"},
		{ID: "watercolor", Name: "Watercolor", Credits: 1,
			Description: "Soft washes and paper grain"},
		{ID: "ink", Name: "Ink Wash", Credits: 1,
			Description: "High-contrast sumi-e strokes"},
		{ID: "oil", Name: "Oil Painting", Credits: 2,
			Description: "Heavy impasto, gallery varnish"},
		{ID: "sketch", Name: "Pencil Sketch", Credits: 1,
			Description: "Loose graphite linework"},
		{ID: "neon", Name: "Neon Pop", Credits: 2,
			Description: "Synthwave palette, rim glow"},
	}
}

// StyleByID looks a style up, falling back to a zero Style with the raw ID
// as its name so unknown server styles still render.
func StyleByID(id string) Style {
	for _, s := range StyleCatalog() {
		if s.ID == id {
			return s
		}
	}
	return Style{ID: id, Name: id}
}
