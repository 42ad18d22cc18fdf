package config

// Version is the routegrid binary version.
// Set at build time via: -ldflags "-X github.com/routegrid/routegrid/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
