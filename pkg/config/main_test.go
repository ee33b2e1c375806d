// pkg/config/main_test.go
// TEST TYPE: Test Setup
// DEPENDENCIES: None
// PURPOSE: Silence logging for the package tests

package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	m.Run()
}
