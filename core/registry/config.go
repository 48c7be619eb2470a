package registry

// Source names where the registry is loaded from.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// Config holds configuration for loading the location registry.
type Config struct {
	// Source is one of embedded, file, storage, database.
	Source string `mapstructure:"source" default:"embedded"`
	// Path is the registry file for the file source (.json, .yaml or .yml).
	Path string `mapstructure:"path" default:"locations.json"`
	// Object is the object name inside the storage bucket for the storage source.
	Object string `mapstructure:"object" default:"registry/locations.json"`
}
