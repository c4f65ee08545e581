package ast

import (
	"strings"
)

// NodeString returns a string representation of the node id and its children.
//
//   class Self: Eq { function eq(x, y); function neq(x, y); }
func NodeString(t *Tree, id NodeID) string {
	var sb strings.Builder
	nodeString(&sb, t, id)
	return sb.String()
}

func nodeString(sb *strings.Builder, t *Tree, id NodeID) {
	if id == InvalidNode {
		sb.WriteString("<invalid>")
		return
	}
	n := t.Node(id)
	switch n.Kind {
	case KindSourceUnit:
		for i, child := range n.Children {
			if i > 0 {
				sb.WriteByte('\n')
			}
			nodeString(sb, t, child)
		}

	case KindTypeClassDefinition:
		sb.WriteString("class ")
		nodeString(sb, t, n.TypeVariable)
		sb.WriteString(": ")
		sb.WriteString(n.Name)
		writeBody(sb, t, n.Children)

	case KindTypeClassInstantiation:
		sb.WriteString("instantiation ")
		sb.WriteString(n.Name)
		writeBody(sb, t, n.Children)

	case KindFunctionDefinition:
		sb.WriteString("function ")
		sb.WriteString(n.Name)
		sb.WriteByte('(')
		for i, param := range n.Children {
			if i > 0 {
				sb.WriteString(", ")
			}
			nodeString(sb, t, param)
		}
		sb.WriteByte(')')

	case KindTypeVariableDeclaration, KindParameter:
		sb.WriteString(n.Name)

	default:
		sb.WriteString("<" + n.Kind.String() + ">")
	}
}

func writeBody(sb *strings.Builder, t *Tree, members []NodeID) {
	if len(members) == 0 {
		sb.WriteString(" {}")
		return
	}
	sb.WriteString(" { ")
	for _, member := range members {
		nodeString(sb, t, member)
		sb.WriteString("; ")
	}
	sb.WriteByte('}')
}
