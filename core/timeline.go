package core

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// SRTValue is one posture sample: translation, rotation (radians), scale,
// and the centroid the rotation/scale are anchored on. Pos and Centroid are
// in the parent's coordinate space and the node's local space respectively.
type SRTValue struct {
	Pos      Vec2
	Rotate   float64
	Scale    Vec2
	Centroid Vec2
}

// DefaultSRT returns the rest posture: no offset, no rotation, unit scale.
func DefaultSRT() SRTValue {
	return SRTValue{Scale: Vec2{1, 1}}
}

// Key is a single keyframe. A flat struct covers both track types; SRT is
// meaningful on TrackSRT keys, CellOffset on TrackImage keys.
type Key struct {
	Frame int
	// Easing shapes the interpolation toward the next key.
	// nil means ease.Linear.
	Easing ease.TweenFunc

	SRT        SRTValue // TrackSRT
	CellOffset Vec2     // TrackImage: draw offset of the image cell
}

// Track is a frame-keyed map of keyframes of one TrackType.
type Track struct {
	typ    TrackType
	keys   map[int]*Key
	frames []int
	sorted bool
}

func newTrack(typ TrackType) *Track {
	return &Track{typ: typ, keys: make(map[int]*Key), sorted: true}
}

// Type returns the track's key type.
func (t *Track) Type() TrackType {
	return t.typ
}

// Put inserts key, replacing any existing key on the same frame.
// Panics if key is nil.
func (t *Track) Put(key *Key) {
	if key == nil {
		panic("core: cannot put nil key")
	}
	if _, exists := t.keys[key.Frame]; !exists {
		t.frames = append(t.frames, key.Frame)
		t.sorted = false
	}
	t.keys[key.Frame] = key
}

// Remove deletes the key at frame. Returns false if no key exists there.
func (t *Track) Remove(frame int) bool {
	if _, exists := t.keys[frame]; !exists {
		return false
	}
	delete(t.keys, frame)
	for i, f := range t.frames {
		if f == frame {
			copy(t.frames[i:], t.frames[i+1:])
			t.frames = t.frames[:len(t.frames)-1]
			break
		}
	}
	return true
}

// KeyAt returns the key on exactly the given frame.
func (t *Track) KeyAt(frame int) (*Key, bool) {
	k, ok := t.keys[frame]
	return k, ok
}

// Frames returns the key frames in ascending order.
// The returned slice MUST NOT be mutated by the caller.
func (t *Track) Frames() []int {
	if !t.sorted {
		sort.Ints(t.frames)
		t.sorted = true
	}
	return t.frames
}

// Count returns the number of keys on the track.
func (t *Track) Count() int {
	return len(t.keys)
}

// Timeline holds one track per TrackType for a node.
type Timeline struct {
	tracks [2]*Track
}

// NewTimeline creates a timeline with empty SRT and image tracks.
func NewTimeline() *Timeline {
	return &Timeline{tracks: [2]*Track{
		newTrack(TrackSRT),
		newTrack(TrackImage),
	}}
}

// Map returns the track of the given type.
func (tl *Timeline) Map(typ TrackType) *Track {
	return tl.tracks[typ]
}

// PutSRTKey inserts an SRT key at frame and returns it.
func (tl *Timeline) PutSRTKey(frame int, v SRTValue) *Key {
	k := &Key{Frame: frame, SRT: v}
	tl.Map(TrackSRT).Put(k)
	return k
}

// PutImageKey inserts an image key at frame and returns it.
func (tl *Timeline) PutImageKey(frame int, offset Vec2) *Key {
	k := &Key{Frame: frame, CellOffset: offset}
	tl.Map(TrackImage).Put(k)
	return k
}

// srtAt samples the SRT track at frame. Outside the keyed range the nearest
// key is held; between keys each component is eased with the earlier key's
// easing function. Panics if the track is empty; callers fall back to the
// node's rest posture instead.
func (tl *Timeline) srtAt(frame int) SRTValue {
	track := tl.Map(TrackSRT)
	frames := track.Frames()
	if len(frames) == 0 {
		panic("core: sampling an empty SRT track")
	}
	if frame <= frames[0] {
		return track.keys[frames[0]].SRT
	}
	last := frames[len(frames)-1]
	if frame >= last {
		return track.keys[last].SRT
	}
	// Find the span [k0, k1) containing frame.
	i := sort.SearchInts(frames, frame+1) - 1
	k0 := track.keys[frames[i]]
	k1 := track.keys[frames[i+1]]
	return interpSRT(k0, k1, frame)
}

// interpSRT eases every posture component from k0 to k1 at frame.
func interpSRT(k0, k1 *Key, frame int) SRTValue {
	fn := k0.Easing
	if fn == nil {
		fn = ease.Linear
	}
	t := float32(frame - k0.Frame)
	d := float32(k1.Frame - k0.Frame)
	lerp := func(a, b float64) float64 {
		return float64(fn(t, float32(a), float32(b-a), d))
	}
	a := k0.SRT
	b := k1.SRT
	return SRTValue{
		Pos:      Vec2{lerp(a.Pos.X, b.Pos.X), lerp(a.Pos.Y, b.Pos.Y)},
		Rotate:   lerp(a.Rotate, b.Rotate),
		Scale:    Vec2{lerp(a.Scale.X, b.Scale.X), lerp(a.Scale.Y, b.Scale.Y)},
		Centroid: Vec2{lerp(a.Centroid.X, b.Centroid.X), lerp(a.Centroid.Y, b.Centroid.Y)},
	}
}
