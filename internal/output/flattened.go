package output

import (
	"github.com/temirov/ftrek/internal/types"
	"github.com/temirov/ftrek/internal/utils"
	"github.com/temirov/ftrek/internal/walk"
)

// RenderFlattened draws the pre-order stream produced by walker. Hierarchy is
// rebuilt by comparing each path's components with the previous entry's.
//
// Without sibling lookahead an entry is drawn as the last of its level when it
// is the final component of its own path, so a later sibling can follow an
// entry already drawn with the last connector.
//
// The root line is always the root path with a trailing slash, whatever the
// root resolves to.
func (renderer *Renderer) RenderFlattened(root string, walker walk.FlatWalker) error {
	if _, classifyError := walk.ClassifyPath(root); classifyError != nil {
		return classifyError
	}
	session := flattenedSession{renderer: renderer, root: root}
	return walker.Walk(root, session.visit)
}

type flattenedSession struct {
	renderer           *Renderer
	root               string
	stack              PrefixStack
	renderedComponents []string
}

func (session *flattenedSession) visit(entry types.FlatEntry) error {
	components := utils.PathComponents(utils.RelativePathOrSelf(entry.Path, session.root))
	depth := len(components)
	if depth == 0 {
		return session.renderer.writeRootLine(session.root, types.EntryKindDirectory)
	}

	session.stack.Truncate(depth - 1)
	if len(session.renderedComponents) > depth-1 {
		session.renderedComponents = session.renderedComponents[:depth-1]
	}

	for index, component := range components {
		if index < len(session.renderedComponents) && session.renderedComponents[index] == component {
			continue
		}

		isLast := index == depth-1
		kind := types.EntryKindDirectory
		if isLast && !entry.IsDir {
			kind = classifyOrRegular(entry.Path)
		}
		if writeError := session.renderer.writeEntryLine(session.stack.Flags(index), isLast, component, kind); writeError != nil {
			return writeError
		}

		session.stack.Truncate(index)
		session.stack.Push(isLast)
		session.renderedComponents = append(session.renderedComponents[:index], component)
		return nil
	}
	return nil
}

func classifyOrRegular(path string) types.EntryKind {
	kind, classifyError := walk.ClassifyPath(path)
	if classifyError != nil {
		return types.EntryKindRegular
	}
	return kind
}
