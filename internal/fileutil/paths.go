package fileutil

const (
	// DefaultOutput is the file written when no output path is given.
	DefaultOutput = ".gitignore"

	// Stdout is the output path that writes to standard output instead of a file.
	Stdout = "-"
)

// ConfigFileNames lists the config file names searched for, in order.
var ConfigFileNames = []string{".gig.yaml", ".gig.yml", ".gig.toml"}

// IsStdout reports whether path refers to standard output.
func IsStdout(path string) bool {
	return path == Stdout
}
