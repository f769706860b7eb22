package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is overridden with -ldflags "-X .../cmd.version=v1.2.3".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "careerprep %s\n", version)
		if short, _ := cmd.Flags().GetBool("short"); short {
			return
		}
		fmt.Fprintf(out, "  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		if rev, dirty := vcsRevision(); rev != "" {
			if dirty {
				rev += " (modified)"
			}
			fmt.Fprintf(out, "  commit: %s\n", rev)
		}
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "print only the version")
}

// vcsRevision reads the commit stamped by the go tool, if any.
func vcsRevision() (rev string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return rev, dirty
}
