// internal/version/version.go
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X magmerge/internal/version.Version=v1.2.0" ./cmd/magmerge
var Version = "dev"
