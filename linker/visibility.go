package linker

import "github.com/wireproto/wireproto/ast"

// computeVisibility returns, for every file name in files, the set of file
// names whose top-level symbols are visible for name resolution within it:
// itself, every file it directly imports, and every file transitively
// reachable through "import public" chains (spec §4.3). "import weak" is
// folded in as an ordinary import, per spec. Import cycles are tolerated —
// visited tracks progress so a cycle just stops expanding rather than
// recursing forever.
func computeVisibility(files map[string]*ast.File) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(files))
	for name, f := range files {
		visible := map[string]bool{name: true}
		visited := map[string]bool{name: true}
		var expand func(path string, onlyPublic bool)
		expand = func(path string, onlyPublic bool) {
			imp, ok := files[path]
			if !ok || visited[path] {
				return
			}
			visited[path] = true
			visible[path] = true
			for _, i := range imp.Imports {
				if onlyPublic && i.Kind != ast.ImportPublic {
					continue
				}
				expand(i.Path, true)
			}
		}
		for _, i := range f.Imports {
			expand(i.Path, true)
		}
		out[name] = visible
	}
	return out
}
