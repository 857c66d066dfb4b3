package main

import (
	"os"

	"storefront/internal/logx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logx.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
