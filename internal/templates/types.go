// Package templates provides the embedded component templates and rendering.
package templates

// Template represents a component template with its metadata.
type Template struct {
	// Name is the template identifier.
	Name TemplateName

	// File is the template file inside the embedded filesystem.
	File string

	// Description explains what the rendered file contains.
	Description string
}

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// Name is the component identifier as supplied by the caller.
	Name string

	// SharedName is the render file the index and story import (e.g. "Render").
	SharedName string

	// ImportPath is the container's import path for the component.
	ImportPath string

	// UpperCase selects the capitalized name in the test's relative import.
	UpperCase bool

	// Folders lists the folders an index-of-folders file re-exports.
	Folders []string
}
