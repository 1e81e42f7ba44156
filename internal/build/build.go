// Package build provides build information that is linked into the application. Other
// packages within this project can use this information in logs etc..
package build

var (
	// Version is the built version.
	Version = "dev"

	// Commit is the commit hash of the built version.
	Commit = "none"

	// Date is the date when the binary was built.
	Date = "unknown"

	// ProjectName is the project name, used as the metrics namespace.
	ProjectName = "pstack"
)
