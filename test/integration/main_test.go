// Package integration_test runs the compiled timekeeper binary end to end.
// The binary is built once in TestMain and every test gets its own
// TIMEKEEPER_HOME.
package integration_test

import (
	"log"
	"os"
	"testing"

	"timekeeper/test/integration/harness"
)

func TestMain(m *testing.M) {
	if _, err := harness.BuildBinary(); err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()
	os.Exit(code)
}
