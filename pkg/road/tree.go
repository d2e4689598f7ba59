package road

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roadsmith/pkg/math"
)

var (
	ErrIndexOutOfRange = errors.New("child slot out of range")
	ErrInvalidNode     = errors.New("invalid node handle")
	ErrSlotOccupied    = errors.New("child slot already occupied")
	ErrCycle           = errors.New("attaching node would create a cycle")
	ErrNotDetached     = errors.New("node is attached to a parent")
)

// NodeID is a stable handle to a node in a Tree.
type NodeID int32

// NoNode marks an empty child slot or a missing parent.
const NoNode NodeID = -1

type node struct {
	seg      Segment
	parent   NodeID
	children []NodeID
}

// Tree is an arena of segment nodes linked through handles. Every node has
// at most one parent, and a node's parent always holds it in one of its
// child slots. The root is the node the road starts from.
type Tree struct {
	nodes []*node
	free  []NodeID
	root  NodeID
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{root: NoNode}
}

// NewNode stores seg as a detached node and returns its handle.
func (t *Tree) NewNode(seg Segment) NodeID {
	n := &node{
		seg:      seg,
		parent:   NoNode,
		children: make([]NodeID, seg.Kind().Arity()),
	}
	for i := range n.children {
		n.children[i] = NoNode
	}

	if k := len(t.free); k > 0 {
		id := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) get(id NodeID) (*node, error) {
	if id < 0 || int(id) >= len(t.nodes) || t.nodes[id] == nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	return t.nodes[id], nil
}

// Valid reports whether id refers to a live node.
func (t *Tree) Valid(id NodeID) bool {
	_, err := t.get(id)
	return err == nil
}

// Len returns the number of live nodes, attached or not.
func (t *Tree) Len() int {
	return len(t.nodes) - len(t.free)
}

// Root returns the start node, or NoNode for an empty road.
func (t *Tree) Root() NodeID { return t.root }

// SetRoot makes a detached node the start of the road. The previous root,
// if any, is left in the arena.
func (t *Tree) SetRoot(id NodeID) error {
	if id == NoNode {
		t.root = NoNode
		return nil
	}
	n, err := t.get(id)
	if err != nil {
		return err
	}
	if n.parent != NoNode {
		return fmt.Errorf("set root %d: %w", id, ErrNotDetached)
	}
	t.root = id
	return nil
}

// Segment returns the geometry of a node, or nil for an invalid handle.
func (t *Tree) Segment(id NodeID) Segment {
	n, err := t.get(id)
	if err != nil {
		return nil
	}
	return n.seg
}

// Parent returns the parent handle, or NoNode.
func (t *Tree) Parent(id NodeID) NodeID {
	n, err := t.get(id)
	if err != nil {
		return NoNode
	}
	return n.parent
}

// Children returns a copy of the child slots of id.
func (t *Tree) Children(id NodeID) []NodeID {
	n, err := t.get(id)
	if err != nil {
		return nil
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the node in slot of id, which may be NoNode.
func (t *Tree) Child(id NodeID, slot int) (NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return NoNode, err
	}
	if slot < 0 || slot >= len(n.children) {
		return NoNode, fmt.Errorf("%w: slot %d of %s node", ErrIndexOutOfRange, slot, n.seg.Kind())
	}
	return n.children[slot], nil
}

// AddNode attaches child in slot of parent. A child attached elsewhere is
// first unlinked from its old slot; a different node already in the slot is
// detached and left in the arena.
func (t *Tree) AddNode(parent, child NodeID, slot int) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	c, err := t.get(child)
	if err != nil {
		return err
	}
	if slot < 0 || slot >= len(p.children) {
		return fmt.Errorf("%w: slot %d of %s node", ErrIndexOutOfRange, slot, p.seg.Kind())
	}
	if t.isAncestor(child, parent) {
		return fmt.Errorf("add %d under %d: %w", child, parent, ErrCycle)
	}
	if child == t.root {
		t.root = NoNode
	}

	t.unlink(child)
	if old := p.children[slot]; old != NoNode && old != child {
		t.nodes[old].parent = NoNode
	}
	p.children[slot] = child
	c.parent = parent
	return nil
}

// InsertNode splices a detached node between parent and the child in slot.
// The displaced child, if any, becomes the new node's child 0.
func (t *Tree) InsertNode(parent, inserted NodeID, slot int) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	n, err := t.get(inserted)
	if err != nil {
		return err
	}
	if slot < 0 || slot >= len(p.children) {
		return fmt.Errorf("%w: slot %d of %s node", ErrIndexOutOfRange, slot, p.seg.Kind())
	}
	if n.parent != NoNode || inserted == t.root {
		return fmt.Errorf("insert %d: %w", inserted, ErrNotDetached)
	}
	if n.children[DefaultSlot] != NoNode {
		return fmt.Errorf("insert %d: %w", inserted, ErrSlotOccupied)
	}
	if t.isAncestor(inserted, parent) {
		return fmt.Errorf("insert %d under %d: %w", inserted, parent, ErrCycle)
	}

	existing := p.children[slot]
	p.children[slot] = inserted
	n.parent = parent
	if existing != NoNode {
		n.children[DefaultSlot] = existing
		t.nodes[existing].parent = inserted
	}
	return nil
}

// RemoveChild clears the slot of parent holding child and returns that
// slot, or -1 when child is not a child of parent. The removed subtree
// stays in the arena until Prune.
func (t *Tree) RemoveChild(parent, child NodeID) (int, error) {
	p, err := t.get(parent)
	if err != nil {
		return -1, err
	}
	for i, id := range p.children {
		if id == child && id != NoNode {
			p.children[i] = NoNode
			t.nodes[id].parent = NoNode
			return i, nil
		}
	}
	return -1, nil
}

// Prune frees a node and its whole subtree. The node is unlinked from its
// parent first; pruning the root empties the road.
func (t *Tree) Prune(id NodeID) error {
	if _, err := t.get(id); err != nil {
		return err
	}
	t.unlink(id)
	if id == t.root {
		t.root = NoNode
	}

	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range t.nodes[cur].children {
			if c != NoNode {
				stack = append(stack, c)
			}
		}
		t.nodes[cur] = nil
		t.free = append(t.free, cur)
	}
	return nil
}

// Reset empties the tree.
func (t *Tree) Reset() {
	t.nodes = nil
	t.free = nil
	t.root = NoNode
}

// unlink removes id from its parent's slot.
func (t *Tree) unlink(id NodeID) {
	n := t.nodes[id]
	if n.parent == NoNode {
		return
	}
	p := t.nodes[n.parent]
	for i, c := range p.children {
		if c == id {
			p.children[i] = NoNode
		}
	}
	n.parent = NoNode
}

// isAncestor reports whether a is b or one of b's ancestors.
func (t *Tree) isAncestor(a, b NodeID) bool {
	for cur := b; cur != NoNode; cur = t.nodes[cur].parent {
		if cur == a {
			return true
		}
	}
	return false
}

// Walk visits the road depth-first from the root, children in slot order.
// Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(id NodeID, seg Segment) bool) {
	if t.root == NoNode {
		return
	}
	var visit func(id NodeID) bool
	visit = func(id NodeID) bool {
		n := t.nodes[id]
		if !fn(id, n.seg) {
			return false
		}
		for _, c := range n.children {
			if c != NoNode && !visit(c) {
				return false
			}
		}
		return true
	}
	visit(t.root)
}

// WalkBreadthFirst visits the road level by level from the root.
func (t *Tree) WalkBreadthFirst(fn func(id NodeID, seg Segment) bool) {
	if t.root == NoNode {
		return
	}
	queue := []NodeID{t.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n := t.nodes[id]
		if !fn(id, n.seg) {
			return
		}
		for _, c := range n.children {
			if c != NoNode {
				queue = append(queue, c)
			}
		}
	}
}

// Clone copies the road reachable from the root breadth-first. The copy
// has the same shape and segment parameters and shares no segment values
// with t. Detached nodes are not copied.
func (t *Tree) Clone() *Tree {
	out := NewTree()
	if t.root == NoNode {
		return out
	}

	type pair struct{ src, dst NodeID }
	out.root = out.NewNode(t.nodes[t.root].seg.Clone())
	queue := []pair{{t.root, out.root}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for slot, c := range t.nodes[cur.src].children {
			if c == NoNode {
				continue
			}
			id := out.NewNode(t.nodes[c].seg.Clone())
			out.nodes[cur.dst].children[slot] = id
			out.nodes[id].parent = cur.dst
			queue = append(queue, pair{c, id})
		}
	}
	return out
}

// Anchor is an empty child slot that a new segment can be attached to.
type Anchor struct {
	Node  NodeID
	Slot  int
	Kind  Kind
	Point math.Vec3
	Yaw   float32
}

// OpenAnchors lists every empty slot of the road in depth-first order.
func (t *Tree) OpenAnchors() []Anchor {
	var anchors []Anchor
	t.Walk(func(id NodeID, seg Segment) bool {
		for slot, c := range t.nodes[id].children {
			if c != NoNode {
				continue
			}
			point, yaw, _ := SlotAnchor(seg, slot)
			anchors = append(anchors, Anchor{
				Node:  id,
				Slot:  slot,
				Kind:  seg.Kind(),
				Point: point,
				Yaw:   yaw,
			})
		}
		return true
	})
	return anchors
}

// SlotAnchor returns where a segment attached to slot of seg starts and
// which way it heads.
func SlotAnchor(seg Segment, slot int) (math.Vec3, float32, error) {
	if slot < 0 || slot >= seg.Kind().Arity() {
		return math.Vec3{}, 0, fmt.Errorf("%w: slot %d of %s node", ErrIndexOutOfRange, slot, seg.Kind())
	}
	if in, ok := seg.(*IntersectionSegment); ok {
		switch slot {
		case SlotCenterLeft:
			return in.LeftPoint(), in.LeftRotation().EulerAngles().Y, nil
		case SlotCenterRight:
			return in.RightPoint(), in.RightRotation().EulerAngles().Y, nil
		}
	}
	return seg.EndPoint(), seg.EndYaw(), nil
}
