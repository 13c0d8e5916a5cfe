package version

// Version is the dvm release version. Overridden at build time via
// -ldflags "-X dvm/src/version.Version=...".
var Version = "0.1.0-dev"
