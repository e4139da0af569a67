package config

// ManagerInterface defines configuration management operations
type ManagerInterface interface {
	Load() (*Config, error)
	LoadFile() (*Config, error)
	Save(*Config) error
}

var _ ManagerInterface = (*Manager)(nil)
