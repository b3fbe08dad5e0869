package domain

// visibleSpecialties is how many specialty tags a guide card shows before collapsing into "+N".
const visibleSpecialties = 2

// Guide is a display fixture for the featured guides section. ID is only a transient key.
type Guide struct {
	ID          int      `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Location    string   `yaml:"location" json:"location"`
	Rating      float64  `yaml:"rating" json:"rating"`
	Reviews     int      `yaml:"reviews" json:"reviews"`
	Price       string   `yaml:"price" json:"price"`
	Image       string   `yaml:"image" json:"image"`
	ImageObject string   `yaml:"image_object" json:"-"`
	Specialties []string `yaml:"specialties" json:"specialties"`
	Languages   []string `yaml:"languages" json:"languages"`
}

func (g Guide) VisibleSpecialties() []string {
	if len(g.Specialties) <= visibleSpecialties {
		return g.Specialties
	}
	return g.Specialties[:visibleSpecialties]
}

func (g Guide) HiddenSpecialties() []string {
	if len(g.Specialties) <= visibleSpecialties {
		return nil
	}
	return g.Specialties[visibleSpecialties:]
}
