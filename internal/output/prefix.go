package output

import "strings"

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
)

// PrefixStack records, per ancestor depth, whether that ancestor was the last
// sibling at its level. Its length equals the depth of the entry being drawn.
type PrefixStack struct {
	lastFlags []bool
}

// Push enters a subtree whose root has the given last-sibling status.
func (stack *PrefixStack) Push(isLast bool) {
	stack.lastFlags = append(stack.lastFlags, isLast)
}

// Pop leaves the innermost subtree. Popping an empty stack is a no-op.
func (stack *PrefixStack) Pop() {
	if len(stack.lastFlags) == 0 {
		return
	}
	stack.lastFlags = stack.lastFlags[:len(stack.lastFlags)-1]
}

// Enter pushes isLast and returns the matching Pop, meant to be deferred so the
// level is released on every return path.
func (stack *PrefixStack) Enter(isLast bool) func() {
	stack.Push(isLast)
	depth := len(stack.lastFlags)
	return func() {
		stack.Truncate(depth - 1)
	}
}

// Truncate drops every level at or beyond length.
func (stack *PrefixStack) Truncate(length int) {
	if length < 0 {
		length = 0
	}
	if length < len(stack.lastFlags) {
		stack.lastFlags = stack.lastFlags[:length]
	}
}

// Len returns the current depth.
func (stack *PrefixStack) Len() int {
	return len(stack.lastFlags)
}

// Flags returns the first count levels, clamped to the stack depth.
func (stack *PrefixStack) Flags(count int) []bool {
	if count > len(stack.lastFlags) {
		count = len(stack.lastFlags)
	}
	if count < 0 {
		count = 0
	}
	return stack.lastFlags[:count]
}

// writeTreePrefix appends one padding segment per ancestor flag followed by
// the connector of the entry itself.
func writeTreePrefix(builder *strings.Builder, ancestorFlags []bool, isLast bool) {
	for _, ancestorIsLast := range ancestorFlags {
		if ancestorIsLast {
			builder.WriteString(treeLastPadding)
		} else {
			builder.WriteString(treeBranchPadding)
		}
	}
	if isLast {
		builder.WriteString(treeLastConnector)
	} else {
		builder.WriteString(treeBranchConnector)
	}
}
