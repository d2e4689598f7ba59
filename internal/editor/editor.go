// Package editor implements a road authoring session: a segment tree plus
// the attachment point the next segment will be built from.
package editor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/roadsmith/internal/logger"
	"github.com/Faultbox/roadsmith/pkg/math"
	"github.com/Faultbox/roadsmith/pkg/road"
)

var (
	ErrEmptyRoad    = errors.New("road is empty")
	ErrNoSelection  = errors.New("no attachment point selected")
	ErrSlotOccupied = errors.New("selected slot already holds a segment")
)

// Config holds the limits applied to new segments.
type Config struct {
	MinWidth   float32
	MinLength  float32
	DefaultMiu float32
}

// Input describes a segment to add. Angle and Radius only matter for
// corners.
type Input struct {
	Width  float32
	Length float32
	Miu    float32
	Pitch  float32
	Roll   float32
	Angle  float32
	Radius float32
}

// IsCorner reports whether the input describes an arc rather than a
// straight run.
func (in Input) IsCorner() bool {
	return in.Angle != 0 && in.Radius > 0
}

// Editor is a single authoring session. The selection is the node and child
// slot the next segment attaches to; it is NoNode while the road is empty.
type Editor struct {
	config   Config
	tree     *road.Tree
	selected road.NodeID
	slot     int
	log      *zap.Logger
}

// New creates an editor with an empty road.
func New(cfg Config) *Editor {
	if cfg.MinWidth <= 0 {
		cfg.MinWidth = 1
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = 1
	}
	return &Editor{
		config:   cfg,
		tree:     road.NewTree(),
		selected: road.NoNode,
		slot:     road.DefaultSlot,
		log:      logger.Named("editor"),
	}
}

// Tree returns the authoring tree. Callers must not modify it while a mesh
// is being built.
func (e *Editor) Tree() *road.Tree { return e.tree }

// Selection returns the selected node and slot.
func (e *Editor) Selection() (road.NodeID, int) { return e.selected, e.slot }

// Empty reports whether the road has no segments.
func (e *Editor) Empty() bool { return e.tree.Root() == road.NoNode }

// AddSegment adds a corner when in has a non-zero angle and a positive
// radius, and a straight run otherwise.
func (e *Editor) AddSegment(in Input) (road.NodeID, error) {
	if in.IsCorner() {
		return e.AddCorner(in)
	}
	return e.AddStraight(in)
}

// AddStraight attaches a straight run at the selection.
func (e *Editor) AddStraight(in Input) (road.NodeID, error) {
	in = e.clamp(in)
	return e.attach(func(start math.Vec3, yaw float32) road.Segment {
		return road.NewStraight(road.StraightParams{
			Width: in.Width, Miu: in.Miu, Start: start,
			Length: in.Length, Pitch: in.Pitch, Roll: in.Roll, Yaw: yaw,
		})
	})
}

// AddCorner attaches an arc at the selection.
func (e *Editor) AddCorner(in Input) (road.NodeID, error) {
	in = e.clamp(in)
	return e.attach(func(start math.Vec3, yaw float32) road.Segment {
		return road.NewCorner(road.CornerParams{
			Width: in.Width, Miu: in.Miu, Start: start,
			Pitch: in.Pitch, Yaw: yaw, Roll: in.Roll, Angle: in.Angle, Radius: in.Radius,
		})
	})
}

// AddIntersection attaches an intersection at the selection. The through
// road continues from its center slot, which becomes the new selection.
func (e *Editor) AddIntersection(in Input) (road.NodeID, error) {
	in = e.clamp(in)
	return e.attach(func(start math.Vec3, yaw float32) road.Segment {
		return road.NewIntersection(road.StraightParams{
			Width: in.Width, Miu: in.Miu, Start: start,
			Length: in.Length, Pitch: in.Pitch, Roll: in.Roll, Yaw: yaw,
		})
	})
}

// clamp applies the configured minimums and the original tool's angle
// limits.
func (e *Editor) clamp(in Input) Input {
	if in.Width < e.config.MinWidth {
		in.Width = e.config.MinWidth
	}
	if in.Length < e.config.MinLength {
		in.Length = e.config.MinLength
	}
	if in.Miu == 0 {
		in.Miu = e.config.DefaultMiu
	}
	in.Miu = math.Clamp01(in.Miu)
	in.Pitch = math.Clamp(in.Pitch, -360, 360)
	in.Roll = math.Clamp(in.Roll, -360, 360)
	in.Angle = math.Clamp(in.Angle, -360, 360)
	if in.Radius < 0 {
		in.Radius = 0
	}
	return in
}

// attach builds a segment at the selected anchor and links it into the
// tree. The first segment of a road starts at the origin heading +Z.
func (e *Editor) attach(build func(start math.Vec3, yaw float32) road.Segment) (road.NodeID, error) {
	var (
		start math.Vec3
		yaw   float32
	)
	if !e.Empty() {
		if e.selected == road.NoNode {
			return road.NoNode, ErrNoSelection
		}
		occupant, err := e.tree.Child(e.selected, e.slot)
		if err != nil {
			return road.NoNode, err
		}
		if occupant != road.NoNode {
			return road.NoNode, fmt.Errorf("node %d slot %d: %w", e.selected, e.slot, ErrSlotOccupied)
		}
		start, yaw, err = road.SlotAnchor(e.tree.Segment(e.selected), e.slot)
		if err != nil {
			return road.NoNode, err
		}
	}

	seg := build(start, yaw)
	id := e.tree.NewNode(seg)
	if e.Empty() {
		if err := e.tree.SetRoot(id); err != nil {
			return road.NoNode, err
		}
	} else if err := e.tree.AddNode(e.selected, id, e.slot); err != nil {
		_ = e.tree.Prune(id)
		return road.NoNode, fmt.Errorf("attaching %s: %w", seg.Kind(), err)
	}

	e.log.Debug("segment added",
		zap.Stringer("kind", seg.Kind()),
		zap.Int32("node", int32(id)),
		zap.Int32("parent", int32(e.selected)),
		zap.Int("slot", e.slot),
		zap.Float32("yaw", yaw),
		zap.Int("nodes", e.tree.Len()),
	)

	e.selected = id
	e.slot = road.DefaultSlot
	return id, nil
}

// Select makes slot of id the attachment point. The slot must be empty.
func (e *Editor) Select(id road.NodeID, slot int) error {
	occupant, err := e.tree.Child(id, slot)
	if err != nil {
		return err
	}
	if occupant != road.NoNode {
		return fmt.Errorf("node %d slot %d: %w", id, slot, ErrSlotOccupied)
	}
	e.selected = id
	e.slot = slot
	e.log.Debug("anchor selected", zap.Int32("node", int32(id)), zap.Int("slot", slot))
	return nil
}

// Anchors lists every open attachment point of the road.
func (e *Editor) Anchors() []road.Anchor {
	return e.tree.OpenAnchors()
}

// Remove deletes the selected node and everything attached after it. The
// parent becomes the selection at the vacated slot; removing the first
// segment empties the road.
func (e *Editor) Remove() error {
	if e.Empty() {
		return ErrEmptyRoad
	}
	if e.selected == road.NoNode {
		return ErrNoSelection
	}

	id := e.selected
	kind := e.tree.Segment(id).Kind()
	parent := e.tree.Parent(id)
	slot := road.DefaultSlot

	if parent != road.NoNode {
		var err error
		if slot, err = e.tree.RemoveChild(parent, id); err != nil {
			return err
		}
	}
	if err := e.tree.Prune(id); err != nil {
		return err
	}

	if e.Empty() {
		e.tree.Reset()
		e.selected = road.NoNode
		e.slot = road.DefaultSlot
	} else {
		e.selected = parent
		e.slot = slot
	}

	e.log.Debug("segment removed",
		zap.Stringer("kind", kind),
		zap.Int32("node", int32(id)),
		zap.Int32("selected", int32(e.selected)),
		zap.Int("slot", e.slot),
		zap.Int("nodes", e.tree.Len()),
	)
	return nil
}

// Clear empties the road.
func (e *Editor) Clear() {
	e.tree.Reset()
	e.selected = road.NoNode
	e.slot = road.DefaultSlot
}

// RawMesh tessellates the road as authored.
func (e *Editor) RawMesh(subdivision int) *road.Mesh {
	mesh := road.BuildMesh(e.tree, subdivision)
	e.log.Info("raw mesh generated",
		zap.Int("segments", e.tree.Len()),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return mesh
}

// SmoothMesh tessellates a smoothed copy of the road. The authoring tree is
// left as it was.
func (e *Editor) SmoothMesh(subdivision int, opts road.SmoothOptions) *road.Mesh {
	smoothed, inserted := road.SmoothRoad(e.tree, opts)
	mesh := road.BuildMesh(smoothed, subdivision)
	e.log.Info("smooth mesh generated",
		zap.Float32("smooth", opts.Percent),
		zap.Int("transitions", inserted),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return mesh
}
