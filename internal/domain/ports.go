package domain

// ConfigLoader reads the inventory settings for a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}
