package main

import (
	"github.com/stralyx/simetrio/internal/log"
)

var Version = "dev"

func init() {
	depsCmd.Flags().Bool("install-python", false, "Install missing Python requirements")
	depsCmd.Flags().Bool("install-binaries", false, "Install missing system binaries")
	depsCmd.Flags().Bool("elevate", false, "Run installers with elevated privileges")

	rootCmd.AddCommand(versionCmd, checkCmd, depsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
