// Package mocks provides centralized mock implementations for testing.
//
// Mocks here use function fields for behavior and record their calls so that
// tests in different packages (generation, api, cmd) share one implementation
// instead of defining inline fakes.
//
// Usage:
//
//	import "github.com/phrazzld/gardenmate/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    provider := mocks.NewMockProviderWithText("Sure, ask away!")
//	    // Use the mock in your test...
//	}
package mocks
