package output

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// YAMLDocument is one named side of a YAML comparison.
type YAMLDocument struct {
	Name string
	Data []byte
}

func (d YAMLDocument) input() (ytbx.InputFile, error) {
	in := ytbx.InputFile{Location: d.Name}
	data := bytes.TrimSpace(d.Data)
	if len(data) == 0 {
		return in, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, fmt.Errorf("parsing %s: %w", d.Name, err)
	}
	in.Documents = docs
	return in, nil
}

// DiffYAML reports the structural differences between from and to in dyff's
// human format. Equivalent documents yield an empty string.
func DiffYAML(from, to YAMLDocument, useColor bool) (string, error) {
	fromInput, err := from.input()
	if err != nil {
		return "", err
	}
	toInput, err := to.input()
	if err != nil {
		return "", err
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing %s with %s: %w", from.Name, to.Name, err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	human := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	var buf bytes.Buffer
	if err := human.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing diff report: %w", err)
	}
	return trimLines(buf.String()), nil
}

// trimLines strips trailing blanks from every line and surrounding blank lines.
func trimLines(s string) string {
	var b strings.Builder
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		b.WriteString(strings.TrimRight(sc.Text(), " \t"))
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}
