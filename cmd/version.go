package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at link time with -ldflags "-X github.com/rehagoal/e2ecov/cmd.version=...".
var version = ""

// buildVersion returns the link-time version, else the module version
// recorded in the binary.
func buildVersion() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, ""
	}

	if version != "" {
		return version, info.GoVersion
	}

	if info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "", info.GoVersion
	}

	return info.Main.Version, info.GoVersion
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version and Go version used to build e2ecov.",
		Run: func(cmd *cobra.Command, _ []string) {
			v, goVersion := buildVersion()
			if v == "" {
				cmd.Println("e2ecov version: unknown")
				return
			}

			cmd.Println("e2ecov version\t", v)

			if goVersion != "" {
				cmd.Println("go version\t", goVersion)
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
