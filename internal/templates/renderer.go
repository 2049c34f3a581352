package templates

import (
	"fmt"
	"strings"
)

// Render executes the named template with data.
// The embedded templates are verified at init and only receive strings, so a
// failure here is a programming error and panics.
func Render(name TemplateName, data TemplateData) string {
	t, err := Get(name)
	if err != nil {
		panic(err)
	}

	var sb strings.Builder
	if err := parsed.ExecuteTemplate(&sb, t.File, data); err != nil {
		panic(fmt.Sprintf("executing template %s: %v", t.File, err))
	}
	return sb.String()
}

// CreateReactComponent renders the class-based web component.
func CreateReactComponent(name string) string {
	return Render(Component, TemplateData{Name: name})
}

// CreateReactFunctionalComponent renders the functional web component.
func CreateReactFunctionalComponent(name string) string {
	return Render(Functional, TemplateData{Name: name})
}

// CreateReactNativeComponent renders the React Native component.
func CreateReactNativeComponent(name string) string {
	return Render(Native, TemplateData{Name: name})
}

// CreateIndex renders the index file that wraps sharedName.
// name is used verbatim, so callers pass it already capitalized.
func CreateIndex(name, sharedName string) string {
	return Render(Index, TemplateData{Name: name, SharedName: sharedName})
}

// CreateIndexForFolders renders an index that imports and re-exports folders.
// Every export entry but the last is followed by a separator.
func CreateIndexForFolders(folders []string) string {
	return Render(IndexForFolders, TemplateData{Folders: folders})
}

// CreateComponentContainerFile renders a redux container.
// importPath is substituted as is.
func CreateComponentContainerFile(name, importPath string) string {
	return Render(Container, TemplateData{Name: name, ImportPath: importPath})
}

// CreateTest renders a snapshot test. upperCase selects whether the relative
// import targets the capitalized or the raw component name.
func CreateTest(name string, upperCase bool) string {
	return Render(Test, TemplateData{Name: name, UpperCase: upperCase})
}

// CreateStorybookComponent renders a story for the shared render file.
func CreateStorybookComponent(name, sharedName string) string {
	return Render(Story, TemplateData{Name: name, SharedName: sharedName})
}

// CreateStorybookTest renders the storyshots test for name's stories.
func CreateStorybookTest(name string) string {
	return Render(StoryTest, TemplateData{Name: name})
}
