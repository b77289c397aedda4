package ui

// Session is the result of one Emit. Use it once: attach payloads to
// selected nodes, then Commit. After Commit the session is inert and
// further attachments are ignored.
type Session[H comparable] struct {
	nodes     []EmittedNode[H]
	sink      Sink[H]
	committed bool
}

// Nodes returns the emitted nodes in creation order. The returned slice MUST
// NOT be mutated.
func (s *Session[H]) Nodes() []EmittedNode[H] {
	return s.nodes
}

// Len returns the number of emitted nodes.
func (s *Session[H]) Len() int {
	return len(s.nodes)
}

// Root returns the node emitted for the layout root.
func (s *Session[H]) Root() EmittedNode[H] {
	return s.nodes[0]
}

// Committed reports whether Commit has been called.
func (s *Session[H]) Committed() bool {
	return s.committed
}

// HandlesByName returns the handles of every node called name.
func (s *Session[H]) HandlesByName(name string) []H {
	var out []H
	for i := range s.nodes {
		if s.nodes[i].Name == name {
			out = append(out, s.nodes[i].Handle)
		}
	}
	return out
}

// AttachByName attaches payload to every node called name. Matching no node
// is not an error.
func (s *Session[H]) AttachByName(name string, payload any) *Session[H] {
	return s.attach(func(e *EmittedNode[H]) bool { return e.Name == name },
		func(EmittedNode[H]) any { return payload })
}

// AttachByTag attaches payload to every node tagged tag.
func (s *Session[H]) AttachByTag(tag string, payload any) *Session[H] {
	return s.attach(func(e *EmittedNode[H]) bool { return e.HasTag(tag) },
		func(EmittedNode[H]) any { return payload })
}

// AttachByNameFunc attaches fn(node) to every node called name. A nil
// result attaches nothing.
func (s *Session[H]) AttachByNameFunc(name string, fn func(EmittedNode[H]) any) *Session[H] {
	return s.attach(func(e *EmittedNode[H]) bool { return e.Name == name }, fn)
}

// AttachByTagFunc attaches fn(node) to every node tagged tag. A nil result
// attaches nothing.
func (s *Session[H]) AttachByTagFunc(tag string, fn func(EmittedNode[H]) any) *Session[H] {
	return s.attach(func(e *EmittedNode[H]) bool { return e.HasTag(tag) }, fn)
}

func (s *Session[H]) attach(match func(*EmittedNode[H]) bool, payload func(EmittedNode[H]) any) *Session[H] {
	if s.committed {
		return s
	}
	for i := range s.nodes {
		e := &s.nodes[i]
		if !match(e) || !s.sink.Alive(e.Handle) {
			continue
		}
		if p := payload(*e); p != nil {
			s.sink.AttachData(e.Handle, p)
		}
	}
	return s
}

// Commit writes each node's resolved style to the sink. Nodes the host has
// destroyed are skipped. Calling Commit again rewrites the same styles.
func (s *Session[H]) Commit() {
	for i := range s.nodes {
		e := &s.nodes[i]
		if !s.sink.Alive(e.Handle) {
			continue
		}
		s.sink.SetStyle(e.Handle, e.Style.Style())
	}
	s.committed = true
}
