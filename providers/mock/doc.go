// Package mock provides a controllable dotted.Environment for tests.
//
// It records every Command passed to Run and Start so tests can assert on
// what would have been executed without spawning Docker.
//
// Usage:
//
//	m := mock.New()
//	m.OnLookPath("docker", "/usr/bin/docker")
//	m.OnRun("docker").Return(&dotted.Result{}, nil)
//	// pass m to the code under test, then inspect m.Commands()
package mock
