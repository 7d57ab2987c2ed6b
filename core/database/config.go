package database

// Config holds configuration for the item database.
type Config struct {
	// Driver is the database driver (memory, mysql, postgres, sqlite).
	Driver string `mapstructure:"driver" default:"memory"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"hotwire"`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverMemory   = "memory"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Enabled reports whether a real database is configured.
// The memory driver keeps items in process and needs no connection.
func (c Config) Enabled() bool {
	return c.Driver != "" && c.Driver != DriverMemory
}
