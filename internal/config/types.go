package config

// Storage backends.
const (
	StorageMarkdown = "markdown"
	StorageSQLite   = "sqlite"
)

// Config is the runtime configuration for amigos.
type Config struct {
	// DataDir is where friends, events and the database live. Empty means
	// files.ResolveBasePath decides (AMIGOS_HOME or ~/.amigos).
	DataDir  string `yaml:"dataDir,omitempty"`
	Storage  string `yaml:"storage,omitempty"`
	LogLevel string `yaml:"logLevel,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage:  StorageMarkdown,
		LogLevel: "warn",
	}
}
