// Package main implements the stoneflow CLI: solving balanced
// transportation instances, generating synthetic datasets, racing the two
// seeding heuristics, and running fuzzy sensitivity studies.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
