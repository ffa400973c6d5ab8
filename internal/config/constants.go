package config

// Application constants
const (
	// Application Info
	AppName    = "rankskills"
	AppVersion = "1.0.0"

	// Environment variables are SKILLS_<SECTION>_<FIELD>
	EnvPrefix = "SKILLS"

	// Log Settings
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "json"
	DefaultLogFile   = "logs/rankskills.log"
)

// DefaultConfigFiles are searched in order when no config path is given
var DefaultConfigFiles = []string{
	"rankskills.yaml",
	"configs/rankskills.yaml",
}
