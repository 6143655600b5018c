// Package misc keeps build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set with -ldflags "-X xlsxw/misc.version=... -X xlsxw/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
	appName string
)

// GetAppName returns program name derived from executable.
func GetAppName() string {
	if appName == "" {
		appName = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	}
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
