package sqlast

// identTerm coerces a bare string into a column/table identifier rather
// than a scalar value — the convention every builder position that
// names a column or table (WHERE's left-hand side, FROM, INTO/TABLE,
// USING) follows. Anything already a Term, Node, or other value passes
// through AnyToTerm unchanged.
func identTerm(v any) Term {
	if s, ok := v.(string); ok {
		return NodeTerm(COL(s))
	}
	return AnyToTerm(v)
}

// conditionTerms interprets the polymorphic WHERE/HAVING argument list
// spec.md §4.3 describes:
//
//	(a, op, b)      -> a op b
//	(a, b)          -> a = b
//	(node)          -> node, used as-is
//	(Row)           -> an implicit AND-of-equalities ConditionMap
//	([]any)         -> each element appended as-is to the current
//	                   Logical, without individually re-wrapping them —
//	                   the literal (possibly surprising) behavior
//	                   spec.md §9's Open Questions preserves rather than
//	                   "fixes".
func conditionTerms(args []any) []Term {
	switch len(args) {
	case 3:
		op, _ := args[1].(string)
		return []Term{NodeTerm(OP(identTerm(args[0]), op, args[2]))}
	case 2:
		return []Term{NodeTerm(EQ(identTerm(args[0]), args[1]))}
	case 1:
		switch v := args[0].(type) {
		case Row:
			return []Term{NodeTerm(CONDITION_MAP(v))}
		case []any:
			return AnySliceToTerms(v)
		case Node:
			return []Term{NodeTerm(v)}
		default:
			return []Term{AnyToTerm(v)}
		}
	default:
		return nil
	}
}

// fieldTerms interprets the polymorphic FIELD/GROUP_BY-style argument
// list: strings, Nodes, []any, or a Row in which true means "identifier
// named by the key", a string means "that string as an identifier
// aliased to the key", and a Node means "that node aliased to the key".
func fieldTerms(args []any) []Term {
	var out []Term
	for _, a := range args {
		switch v := a.(type) {
		case Row:
			for _, f := range v {
				if b, ok := f.Value.(bool); ok && !b {
					continue
				}
				out = append(out, fieldFromRowEntry(f.Name, f.Value))
			}
		case []any:
			out = append(out, fieldTerms(v)...)
		case string:
			out = append(out, NodeTerm(COL(v)))
		case Node:
			out = append(out, NodeTerm(v))
		default:
			out = append(out, AnyToTerm(v))
		}
	}
	return out
}

// fieldFromRowEntry assumes a bool value is already known to be true;
// callers filter out false entries before reaching here.
func fieldFromRowEntry(key string, value any) Term {
	switch v := value.(type) {
	case bool:
		return NodeTerm(COL(key))
	case string:
		return NodeTerm(COL(v).As(key))
	case Node:
		return aliasNode(v, key)
	default:
		return NodeTerm(COL(key))
	}
}

// aliasNode returns n with its alias set to key, cloning through the
// handful of concrete node types that can appear here so the caller's
// original node (which may be reused elsewhere) isn't mutated.
func aliasNode(n Node, key string) Term {
	switch v := n.(type) {
	case *Identifier:
		cp := *v
		cp.alias = key
		return NodeTerm(&cp)
	case *BinaryOp:
		cp := *v
		cp.alias = key
		return NodeTerm(&cp)
	case *Func:
		cp := *v
		cp.alias = key
		return NodeTerm(&cp)
	case *Case:
		cp := *v
		cp.alias = key
		return NodeTerm(&cp)
	case *Raw:
		cp := *v
		cp.alias = key
		return NodeTerm(&cp)
	case *Value:
		cp := *v
		cp.alias = key
		return NodeTerm(&cp)
	case *UnaryOp:
		cp := *v
		cp.alias = key
		return NodeTerm(&cp)
	default:
		return NodeTerm(n)
	}
}
