package output

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
)

// descriptionGap separates the longest file name of a directory from the
// description column.
const descriptionGap = 2

// RenderFileTree renders files as a tree rooted at rootName. Files maps
// slash-separated paths relative to rootName to a description shown next to
// each file. Directories are listed before files, both alphabetically.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &dirNode{}
	for path, desc := range files {
		root.add(strings.Split(filepath.ToSlash(path), "/"), desc)
	}
	return root.tree(rootName+"/").String() + "\n"
}

// dirNode is one directory of a file tree under construction.
type dirNode struct {
	dirs  map[string]*dirNode
	files map[string]string
}

func (d *dirNode) add(parts []string, desc string) {
	if len(parts) == 1 {
		if d.files == nil {
			d.files = make(map[string]string)
		}
		d.files[parts[0]] = desc
		return
	}

	if d.dirs == nil {
		d.dirs = make(map[string]*dirNode)
	}
	child, ok := d.dirs[parts[0]]
	if !ok {
		child = &dirNode{}
		d.dirs[parts[0]] = child
	}
	child.add(parts[1:], desc)
}

func (d *dirNode) tree(label string) *tree.Tree {
	t := tree.Root(label).EnumeratorStyle(StyleDim.PaddingRight(1))

	for _, name := range slices.Sorted(maps.Keys(d.dirs)) {
		t.Child(d.dirs[name].tree(name + "/"))
	}

	names := slices.Sorted(maps.Keys(d.files))
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	for _, name := range names {
		t.Child(fileLabel(name, d.files[name], width))
	}
	return t
}

func fileLabel(name, desc string, width int) string {
	if desc == "" {
		return name
	}
	return name + strings.Repeat(" ", width-len(name)+descriptionGap) + StyleDim.Render(desc)
}
