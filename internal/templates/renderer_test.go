package templates

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 9)
	for _, n := range names {
		tmpl, err := Get(n)
		require.NoError(t, err, "template %s", n)
		assert.Equal(t, n, tmpl.Name)
		assert.NotEmpty(t, tmpl.Description)
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("unknown")
	assert.Error(t, err)
}

func TestList_MatchesNames(t *testing.T) {
	list := List()
	require.Len(t, list, len(Names()))
	for i, n := range Names() {
		assert.Equal(t, n, list[i].Name)
	}
}

func TestCreateReactComponent(t *testing.T) {
	out := CreateReactComponent("render")

	assert.Contains(t, out, "import React, { PureComponent } from 'react'")
	assert.Contains(t, out, "class Render extends PureComponent {")
	assert.Contains(t, out, "Render.propTypes = {}")
	assert.Contains(t, out, "export default Render")
}

func TestCreateReactFunctionalComponent(t *testing.T) {
	out := CreateReactFunctionalComponent("Render")

	assert.Contains(t, out, "const Render = () => {")
	assert.NotContains(t, out, "PureComponent")
	assert.Contains(t, out, "export default Render")
}

func TestCreateReactNativeComponent(t *testing.T) {
	out := CreateReactNativeComponent("render")

	assert.Contains(t, out, "import { View, Text } from 'react-native'")
	assert.Contains(t, out, "<Text>Render</Text>")
	assert.Contains(t, out, "export default Render")
}

func TestCreateIndex(t *testing.T) {
	out := CreateIndex("Button", "Render")

	assert.Contains(t, out, "import Render from './Render'")
	assert.Contains(t, out, "class Button extends React.PureComponent {")
	assert.Contains(t, out, "return <Render {...this.props} />")
	assert.Contains(t, out, "export default injectIntl(Button, { withRef: true })")
}

func TestCreateIndex_NameVerbatim(t *testing.T) {
	// The index does not change the casing it is given.
	out := CreateIndex("button", "Render")
	assert.Contains(t, out, "export default injectIntl(button, { withRef: true })")
}

func TestCreateIndexForFolders(t *testing.T) {
	tests := []struct {
		name    string
		folders []string
		want    string
	}{
		{
			name:    "single folder has no separator",
			folders: []string{"Button"},
			want:    "import Button from './Button' \nexport {\n    Button\n}",
		},
		{
			name:    "last folder is never punctuated",
			folders: []string{"A", "B", "C"},
			want: "import A from './A' \nimport B from './B' \nimport C from './C' \n" +
				"export {\n    A, \nB, \nC\n}",
		},
		{
			name:    "two folders",
			folders: []string{"Card", "Avatar"},
			want:    "import Card from './Card' \nimport Avatar from './Avatar' \nexport {\n    Card, \nAvatar\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreateIndexForFolders(tt.folders))
		})
	}
}

func TestCreateComponentContainerFile(t *testing.T) {
	out := CreateComponentContainerFile("Button", "../../components/button/Button")

	assert.Contains(t, out, "import Button from '../../components/button/Button'")
	assert.Contains(t, out, "const ButtonContainer = connect(mapStateToProps, dispatchFunctions)(Button)")
	assert.Contains(t, out, "export default ButtonContainer")
}

func TestCreateComponentContainerFile_ImportPathOpaque(t *testing.T) {
	out := CreateComponentContainerFile("Button", "./weird//path/../x")
	assert.Contains(t, out, "from './weird//path/../x'")
}

func TestCreateTest(t *testing.T) {
	tests := []struct {
		name       string
		component  string
		upperCase  bool
		wantImport string
	}{
		{"raw import", "button", false, "import Button from '../button'"},
		{"capitalized import", "button", true, "import Button from '../Button'"},
		{"already capitalized", "Button", false, "import Button from '../Button'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := CreateTest(tt.component, tt.upperCase)
			assert.Contains(t, out, tt.wantImport)
			assert.Contains(t, out, "describe('<Button />', () => {")
			assert.Contains(t, out, "createComponentWithProviderAndIntl(<Button />)")
		})
	}
}

func TestCreateStorybookComponent(t *testing.T) {
	out := CreateStorybookComponent("button", "Render")

	assert.Contains(t, out, "import Render from './Render'")
	assert.Contains(t, out, "storiesOf('Button', module)")
}

func TestCreateStorybookTest(t *testing.T) {
	out := CreateStorybookTest("button")

	assert.Contains(t, out, "import initStoryshots from '@storybook/addon-storyshots'")
	assert.Contains(t, out, "storyKindRegex: /^Button$/")
}

func TestRender_Deterministic(t *testing.T) {
	first := CreateIndex("Button", "Render")
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = CreateIndex("Button", "Render")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, first, r)
	}
}

func TestRender_UnknownTemplatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Render("missing", TemplateData{})
	})
}

func TestRender_NoTemplateSyntaxLeaks(t *testing.T) {
	for _, n := range Names() {
		out := Render(n, TemplateData{
			Name:       "button",
			SharedName: "Render",
			ImportPath: "../../components/button/Button",
			Folders:    []string{"Button"},
		})
		assert.False(t, strings.Contains(out, "{{"), "template %s leaked syntax", n)
	}
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Button", false},
		{"camel", "myButton", false},
		{"dollar", "$button", false},
		{"underscore", "_Button2", false},
		{"empty", "", true},
		{"hyphen", "my-button", true},
		{"leading digit", "1button", true},
		{"space", "my button", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
