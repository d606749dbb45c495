/*
Package dsl provides a fluent builder for constructing workflows in Go code
instead of YAML. This is useful for dynamic workflow generation, unit tests
and embedders that want type checking and IDE completion over their flows.

Example usage:

	wf, err := dsl.New("release").
		Default("registry", "ghcr.io").
		Action("pick-version").
		Input("Which version?").
		SaveTo("version").
		Action("confirm").
		Confirm("Tag and push?").
		BreakIfCancel().
		Action("tag").
		Run(`git tag "v{{version}}"`).
		Build()

The resulting workflow runs through parley.Runner.RunWorkflow like any
parsed one.
*/
package dsl
