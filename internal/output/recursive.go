package output

import (
	"github.com/temirov/ftrek/internal/types"
	"github.com/temirov/ftrek/internal/walk"
)

// RenderRecursive draws the tree under root by listing directories depth-first.
// Only a root that cannot be classified or listed is an error; subdirectories
// that cannot be listed are drawn without children.
func (renderer *Renderer) RenderRecursive(root string, lister walk.Lister) error {
	rootKind, classifyError := lister.Classify(root)
	if classifyError != nil {
		return classifyError
	}
	if writeError := renderer.writeRootLine(root, rootKind); writeError != nil {
		return writeError
	}
	if rootKind != types.EntryKindDirectory {
		return nil
	}

	children, listError := lister.List(root)
	if listError != nil {
		return listError
	}

	session := recursiveSession{renderer: renderer, lister: lister}
	return session.visitChildren(children)
}

type recursiveSession struct {
	renderer *Renderer
	lister   walk.Lister
	stack    PrefixStack
}

func (session *recursiveSession) visitChildren(children []types.Entry) error {
	for index, child := range children {
		if visitError := session.visit(child, index == len(children)-1); visitError != nil {
			return visitError
		}
	}
	return nil
}

func (session *recursiveSession) visit(entry types.Entry, isLast bool) error {
	release := session.stack.Enter(isLast)
	defer release()

	depth := session.stack.Len()
	if writeError := session.renderer.writeEntryLine(session.stack.Flags(depth-1), isLast, entry.Name, entry.Kind); writeError != nil {
		return writeError
	}
	if entry.Kind != types.EntryKindDirectory {
		return nil
	}

	children, listError := session.lister.List(entry.Path)
	if listError != nil {
		session.renderer.skip(entry.Path, listError)
		return nil
	}
	return session.visitChildren(children)
}
