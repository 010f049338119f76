package buildinfo

// Version is set at build time via -ldflags.
var Version = "v2.0.7"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Serial is the badge serial number burned into the image.
var Serial = "FREAK-4921.8222023"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
