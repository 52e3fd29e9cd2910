package testutil

import (
	"context"
	"fmt"
	"strings"
)

// Response represents a pre-configured command response for FakeRunner.
type Response struct {
	Output []byte
	Err    error
}

// FakeRunner returns pre-configured responses for testing.
// Responses are keyed by "name arg1 arg2 ..." format.
// If no exact match is found, it tries prefix matching.
type FakeRunner struct {
	// Responses maps command strings to their responses.
	Responses map[string]Response

	// Calls records all commands that were executed, in order.
	Calls []string
}

// NewFakeRunner creates a FakeRunner with an empty response map.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Responses: make(map[string]Response),
	}
}

// Register adds a response for the given command key.
func (r *FakeRunner) Register(key string, output string, err error) {
	r.Responses[key] = Response{
		Output: []byte(output),
		Err:    err,
	}
}

// Run looks up the command in Responses and returns the matching response.
// Unregistered commands behave like a missing executable.
func (r *FakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	fullCmd := name
	if len(args) > 0 {
		fullCmd = name + " " + strings.Join(args, " ")
	}

	r.Calls = append(r.Calls, fullCmd)

	if resp, ok := r.Responses[fullCmd]; ok {
		return resp.Output, resp.Err
	}

	// Longest prefix wins
	bestKey := ""
	for key := range r.Responses {
		if strings.HasPrefix(fullCmd, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		resp := r.Responses[bestKey]
		return resp.Output, resp.Err
	}

	return nil, fmt.Errorf("FakeRunner: executable not found for %q", fullCmd)
}

// Called returns true if a command matching the given prefix was executed.
func (r *FakeRunner) Called(prefix string) bool {
	for _, call := range r.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}
