package badges

// Badge is an achievement unlocked once proficiency reaches Threshold.
type Badge struct {
	ID          string
	Name        string
	Description string
	Threshold   float64
}

// Catalog is an ordered list of badges, lowest threshold first.
type Catalog []Badge

// DefaultCatalog returns the built-in proficiency badges.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "sql_apprentice", Name: "SQL Apprentice", Description: "Reached 30% proficiency", Threshold: 30},
		{ID: "query_builder", Name: "Query Builder", Description: "Reached 50% proficiency", Threshold: 50},
		{ID: "interview_ready", Name: "Interview Ready", Description: "Reached 70% proficiency - Interview Prep Mode unlocked!", Threshold: 70},
		{ID: "sql_expert", Name: "SQL Expert", Description: "Reached 85% proficiency", Threshold: 85},
		{ID: "sql_master", Name: "SQL Master", Description: "Reached 95% proficiency", Threshold: 95},
	}
}

// Get returns the badge with the given ID.
func (c Catalog) Get(id string) (Badge, bool) {
	for _, b := range c {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Icon returns the display icon for a badge, by how hard it is to earn.
func (b Badge) Icon() string {
	switch {
	case b.Threshold >= 95:
		return "👑"
	case b.Threshold >= 85:
		return "🏆"
	case b.Threshold >= 70:
		return "🎯"
	case b.Threshold >= 50:
		return "🧱"
	default:
		return "🌱"
	}
}
