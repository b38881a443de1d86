package model

// Topic is a sustainability theme with its trigger vocabulary.
// Topics are loaded once at startup and never mutated during a run.
type Topic struct {
	Name     string   `json:"name" yaml:"name"`
	Triggers []string `json:"triggers" yaml:"triggers"`
}

// DefaultTopics returns the built-in sustainability theme set.
// Callers may override or extend it through configuration.
func DefaultTopics() []Topic {
	return []Topic{
		{Name: "Carbon", Triggers: []string{"carbon", "emissions", "net-zero", "co2", "greenhouse gas"}},
		{Name: "Water", Triggers: []string{"water", "freshwater", "effluent", "watershed"}},
		{Name: "Energy", Triggers: []string{"energy", "renewable", "solar", "wind power", "electricity"}},
		{Name: "Waste", Triggers: []string{"waste", "recycling", "circular", "landfill", "packaging"}},
		{Name: "Climate", Triggers: []string{"climate", "global warming", "decarbonization"}},
		{Name: "Biodiversity", Triggers: []string{"biodiversity", "habitat", "species", "ecosystem", "nature"}},
	}
}
