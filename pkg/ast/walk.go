package ast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n Node) error

// Walk performs a pre-order traversal of a document's blocks and their
// inline descendants. If fn returns a non-nil error the walk stops
// immediately and returns that error.
func Walk(d *Document, fn WalkFunc) error {
	if d == nil {
		return nil
	}
	for _, b := range d.Blocks {
		if err := fn(b); err != nil {
			return err
		}
		if err := walkInlines(BlockInlines(b), fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkInlines performs a pre-order traversal of an inline subtree.
func WalkInlines(inlines []Inline, fn WalkFunc) error {
	return walkInlines(inlines, fn)
}

func walkInlines(inlines []Inline, fn WalkFunc) error {
	for _, in := range inlines {
		if err := fn(in); err != nil {
			return err
		}
		if err := walkInlines(InlineChildren(in), fn); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns all nodes matching the predicate, in source order.
func FindAll(d *Document, predicate func(n Node) bool) []Node {
	var result []Node

	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(d, func(n Node) error {
		if predicate(n) {
			result = append(result, n)
		}
		return nil
	})

	return result
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(d *Document, kind NodeKind) []Node {
	return FindAll(d, func(n Node) bool {
		return n.Kind() == kind
	})
}

// InnermostAt returns the deepest inline of the given kind within the
// block's subtree whose span contains [start, stop]. A collapsed range
// (start == stop) matches a node when the offset falls anywhere inside
// the node's span, endpoints excluded only at the very start.
func InnermostAt(b Block, kind NodeKind, start, stop int) Inline {
	var found Inline
	var search func(inlines []Inline)
	search = func(inlines []Inline) {
		for _, in := range inlines {
			sp := in.Span()
			if sp.Start <= start && stop <= sp.Stop {
				if in.Kind() == kind {
					found = in
				}
				search(InlineChildren(in))
			}
		}
	}
	search(BlockInlines(b))
	return found
}
