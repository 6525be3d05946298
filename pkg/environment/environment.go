package environment

// Environment names an application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps a raw environment string, including the common short forms, to
// an Environment. Unknown values default to Development.
func Parse(s string) Environment {
	switch s {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether env names production.
func (e Environment) IsProduction() bool { return e == Production }

// IsDevelopment reports whether env names development.
func (e Environment) IsDevelopment() bool { return e == Development }
