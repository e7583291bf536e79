package domain

// ConfigLoader loads calculator configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (CalculatorConfig, error)
}
