// urit - command-line expansion of RFC 6570 URI templates
package main

import "github.com/geturit/urit/pkg/cli"

// Build-time variables set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildDate = buildDate
	cli.Execute()
}
