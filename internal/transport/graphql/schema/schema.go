// Package schema holds the GraphQL SDL of the scheduler API.
package schema

import (
	"embed"
	"io/fs"
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed *.graphqls
var files embed.FS

// Sources returns every SDL file, ordered by name.
func Sources() []*ast.Source {
	names, err := fs.Glob(files, "*.graphqls")
	if err != nil {
		panic(err)
	}
	sort.Strings(names)

	out := make([]*ast.Source, 0, len(names))
	for _, name := range names {
		data, err := files.ReadFile(name)
		if err != nil {
			panic(err)
		}
		out = append(out, &ast.Source{Name: "schema/" + name, Input: string(data)})
	}
	return out
}
