package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reactkit/crc/internal/cmdutil"
	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/output"
	"github.com/reactkit/crc/internal/templates"
)

var templatesShow string

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the file templates",
		Long: `List the templates crc renders files from.

Examples:
  # List templates
  crc templates

  # Print the index template rendered for "Button"
  crc templates --show index`,
		Args: cobra.NoArgs,
		RunE: runTemplates,
	}

	cmd.Flags().StringVar(&templatesShow, "show", "", "Render the named template for a sample component")

	return cmd
}

func runTemplates(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if templatesShow != "" {
		name := templates.TemplateName(templatesShow)
		if _, err := templates.Get(name); err != nil {
			return cmdutil.ReportError(oerrors.NewValidationError(
				err.Error(), "", "show",
				fmt.Sprintf("Known templates: %v", templates.Names()),
			), nil)
		}
		fmt.Fprint(w, templates.Render(name, sampleData()))
		return nil
	}

	tbl := output.NewTable("NAME", "FILE", "DESCRIPTION")
	for _, t := range templates.List() {
		tbl.Row(string(t.Name), t.File, t.Description)
	}
	fmt.Fprintln(w, tbl.String())
	return nil
}

func sampleData() templates.TemplateData {
	l := globals.cfg.Layout.WithDefaults()
	return templates.TemplateData{
		Name:       "Button",
		SharedName: l.SharedName,
		ImportPath: l.ImportPrefix + l.ComponentsDir + "/button/Button",
		UpperCase:  true,
		Folders:    []string{"Button", "Card"},
	}
}
