// Package envtest is a behavioral contract suite for dotted.Environment providers.
//
// A provider test calls Verify with a factory; every contract gets a fresh
// Environment, since some contracts close it.
package envtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/RedDocMD/dotted"
)

// Standard categories for grouping tests.
const (
	CategoryCore        = "core"
	CategoryEnvironment = "environment"
	CategoryFilesystem  = "filesystem"
	CategoryErrors      = "errors"
)

// T is the minimal interface required for testify/assert and require.
type T interface {
	Errorf(format string, args ...any)
	FailNow()
	Skipf(format string, args ...any)
	Context() context.Context
	TempDir() string
	Name() string
}

// Factory returns a new Environment for one contract.
type Factory func(t T) dotted.Environment

// TestCase defines a single behavioral contract requirement.
type TestCase struct {
	Category    string
	Name        string
	Description string
	Prereq      func(t T, env dotted.Environment) (ok bool, reason string)
	Run         func(t T, env dotted.Environment)
}

// ID returns the stable, globally unique contract identifier.
func (tc TestCase) ID() string {
	return fmt.Sprintf("%s/%s", tc.Category, tc.Name)
}

// Verify runs every contract against environments produced by newEnv.
func Verify(t *testing.T, newEnv Factory) {
	t.Helper()

	for _, tc := range AllContracts() {
		t.Run(tc.ID(), func(t *testing.T) {
			env := newEnv(t)

			t.Cleanup(func() { _ = env.Close() })

			if tc.Prereq != nil {
				ok, reason := tc.Prereq(t, env)
				if !ok {
					t.Skipf("prereq unmet: %s", reason)
				}
			}

			tc.Run(t, env)
		})
	}
}

// AllContracts returns all test cases for the contract test suite.
func AllContracts() []TestCase {
	var contracts []TestCase

	contracts = append(contracts, coreContracts()...)
	contracts = append(contracts, environmentContracts()...)
	contracts = append(contracts, fileContracts()...)
	contracts = append(contracts, errorContracts()...)

	return contracts
}

func posixOnly(_ T, env dotted.Environment) (bool, string) {
	if env.TargetOS() == dotted.OSWindows {
		return false, "contract uses a POSIX shell"
	}

	return true, ""
}
