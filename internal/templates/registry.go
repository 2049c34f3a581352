package templates

import "fmt"

// TemplateName represents a template type.
type TemplateName string

const (
	// Component is the class-based React web component.
	Component TemplateName = "component"

	// Functional is the stateless functional React web component.
	Functional TemplateName = "functional"

	// Native is the class-based React Native component.
	Native TemplateName = "native"

	// Container binds a component to the redux store.
	Container TemplateName = "container"

	// Index wraps and re-exports the shared render component.
	Index TemplateName = "index"

	// IndexForFolders re-exports a list of sibling folders.
	IndexForFolders TemplateName = "index-folders"

	// Test is the snapshot test of a component.
	Test TemplateName = "test"

	// Story is the storybook story of a component.
	Story TemplateName = "story"

	// StoryTest is the storyshots test of a component's stories.
	StoryTest TemplateName = "story-test"
)

// templates is the internal registry of available templates.
var templates = map[TemplateName]Template{
	Component: {
		Name:        Component,
		File:        "component.jsx.tmpl",
		Description: "React class component (web render file)",
	},
	Functional: {
		Name:        Functional,
		File:        "functional.jsx.tmpl",
		Description: "React stateless functional component (web render file)",
	},
	Native: {
		Name:        Native,
		File:        "native.js.tmpl",
		Description: "React Native class component (native render file)",
	},
	Container: {
		Name:        Container,
		File:        "container.js.tmpl",
		Description: "react-redux container for a component",
	},
	Index: {
		Name:        Index,
		File:        "index.js.tmpl",
		Description: "Component index wrapping the shared render file",
	},
	IndexForFolders: {
		Name:        IndexForFolders,
		File:        "index_folders.js.tmpl",
		Description: "index.js re-exporting several component folders",
	},
	Test: {
		Name:        Test,
		File:        "test.jsx.tmpl",
		Description: "Jest snapshot test",
	},
	Story: {
		Name:        Story,
		File:        "story.jsx.tmpl",
		Description: "Storybook story",
	},
	StoryTest: {
		Name:        StoryTest,
		File:        "story_test.jsx.tmpl",
		Description: "Storyshots test for the component's stories",
	},
}

// Get returns a template by name.
// Returns an error if the template is not found.
func Get(name TemplateName) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q", name)
	}
	return t, nil
}

// List returns all available templates in a stable order.
func List() []Template {
	names := Names()
	list := make([]Template, 0, len(names))
	for _, n := range names {
		list = append(list, templates[n])
	}
	return list
}

// Names returns all template names.
func Names() []TemplateName {
	return []TemplateName{
		Index, Component, Functional, Native, Container,
		Test, Story, StoryTest, IndexForFolders,
	}
}
