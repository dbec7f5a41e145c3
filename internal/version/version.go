package version

// Version is the current version of the advisor.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/rxtech-lab/argo-advisor/internal/version.Version=1.2.3"
// The default value "main" indicates a development build.
var Version = "main"

// GetVersion returns the current version of the advisor.
func GetVersion() string {
	return Version
}
