package templates

import (
	"embed"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/reactkit/crc/internal/naming"
)

//go:embed files/*.tmpl
var templateFS embed.FS

// parsed holds every embedded template, parsed once at init.
// Rendering only reads it, so concurrent renders never share mutable state.
var parsed = template.Must(
	template.New("crc").
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{"capitalize": naming.Capitalize}).
		ParseFS(templateFS, "files/*.tmpl"),
)
