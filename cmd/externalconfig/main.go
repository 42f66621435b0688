package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/omebuild/externalconfig/internal/config"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "externalconfig: %v\n", err)
		if errors.Is(err, config.ErrMissingEnvironment) {
			os.Exit(100)
		}
		os.Exit(1)
	}
}
