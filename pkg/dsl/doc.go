// Package dsl provides a fluent builder for form definitions.
//
// It exists for tests and for hosts that assemble forms in code
// instead of loading files:
//
//	loader, err := dsl.New().
//		Add("color").Dropdown("Favorite color?", "Red", "Blue").
//		Branch(dsl.Equals("color", "Red"), domain.GoTo("extra")).
//		Done().
//		Add("why").ShortText("Why blue?").Done().
//		Add("extra").ShortText("Anything else?").Done().
//		Build()
//
// Rule IDs are minted by an injected generator (random UUIDs by
// default, a deterministic counter in tests).
package dsl
