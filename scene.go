package mdl

// Property holds a scene-graph value that may be either a fixed
// (static) value or an animated track, per §4.4's static/animated
// duality: inside the handlers that support it, a leading `static`
// keyword selects the fixed form, and its absence selects the track
// form. At most one of Static (with length equal to the channel arity)
// and Track is set; both are nil when the block did not give the
// property and the handler has no default for it.
type Property[T Number] struct {
	Static []T
	Track  *AnimatedTrack[T]
}

// IsAnimated reports whether the property was read as an animated
// track rather than a fixed value.
func (p Property[T]) IsAnimated() bool {
	return p.Track != nil
}

func staticProperty[T Number](v []T) Property[T] {
	return Property[T]{Static: v}
}

// ModelInfo is the Model block's header (§3).
type ModelInfo struct {
	Name          string
	MinimumExtent [3]float32
	MaximumExtent [3]float32
	BoundsRadius  float32
	BlendTime     int32
}

// Sequence is one Sequences/Anim entry (§3).
type Sequence struct {
	Name          string
	IntervalStart uint32
	IntervalEnd   uint32
	MinimumExtent [3]float32
	MaximumExtent [3]float32
	BoundsRadius  float32
	Rarity        *float32
	MoveSpeed     *float32
	NonLooping    bool
}

// Texture is one Textures/Bitmap entry (§3).
type Texture struct {
	Image         string
	ReplaceableId int32
	Flags         TextureFlags
}

// Layer is one Material's rendering pass (§3).
type Layer struct {
	FilterMode    FilterMode
	Shading       LayerShading
	TextureID     Property[int32]
	Alpha         Property[float32]
	CoordId       int32
	TVertexAnimId int32 // -1 => none
}

// Material is one Materials/Material entry (§3).
type Material struct {
	Flags         MaterialRenderMode
	PriorityPlane *int32
	Layers        []*Layer
}

// GeosetSequenceAnim is one entry of Geoset.Anims — a per-sequence
// visibility/color/extent override (§3).
type GeosetSequenceAnim struct {
	Alpha         float32
	Color         [3]float32
	HasColor      bool
	MinimumExtent [3]float32
	MaximumExtent [3]float32
	BoundsRadius  float32
}

// Geoset holds one mesh's dense vertex buffers, faces and material
// binding (§3).
type Geoset struct {
	Vertices         []float32 // n*3
	Normals          []float32 // n*3
	TVertices        [][]float32
	VertexGroup      []byte // length n = len(Vertices)/3
	Faces            []uint16
	Groups           [][]int32
	TotalGroupsCount int32
	MinimumExtent    [3]float32
	MaximumExtent    [3]float32
	BoundsRadius     float32
	MaterialID       int32
	SelectionGroup   int32
	Unselectable     bool
	Anims            []GeosetSequenceAnim
}

// GeosetAnim is a top-level GeosetAnim block: an alpha/color override
// applied to a Geoset by index (§3).
type GeosetAnim struct {
	GeosetId int32 // default -1
	Alpha    Property[float32]
	Color    Property[float32] // arity 3, RGB order after normalization
	Flags    GeosetAnimFlags
}

// ParticleEmitter is the legacy particle emitter block. Unlike
// ParticleEmitter2 it is not a Node: it is never appended to the flat
// Nodes list or any typed node bucket (§3, §9 open question 1).
type ParticleEmitter struct {
	Name         string
	ObjectId     int32
	Parent       int32
	HasParent    bool
	Flags        ParticleEmitterFlags
	EmissionRate Property[float32]
	Gravity      Property[float32]
	Longitude    Property[float32]
	Latitude     Property[float32]
	Visibility   Property[float32]
	Translation  Property[float32] // arity 3
	Scaling      Property[float32] // arity 3
	Rotation     Property[float32] // arity 4
	Particle     ParticleEmitterParticle
}

// ParticleEmitterParticle is the nested Particle{} sub-block of a
// legacy ParticleEmitter.
type ParticleEmitterParticle struct {
	LifeSpan     float32
	InitVelocity float32
	Path         string
}

// Camera is a top-level Camera block (§3). Rotation is intentionally
// arity-1 (roll only) — see §9 design note 3.
type Camera struct {
	Name              string
	Position          [3]float32
	FieldOfView       float32
	NearClip          float32
	FarClip           float32
	TargetPosition    *[3]float32
	TargetTranslation *AnimatedTrack[float32] // arity 3
	Translation       *AnimatedTrack[float32] // arity 3
	Rotation          *AnimatedTrack[float32] // arity 1
}

// TVertexAnim is one TextureAnims/TVertexAnim entry (§3).
type TVertexAnim struct {
	Translation *AnimatedTrack[float32] // arity 3
	Rotation    *AnimatedTrack[float32] // arity 4
	Scaling     *AnimatedTrack[float32] // arity 3
}

// Scene is the root aggregate returned by Parse (§3). It is built
// append-only during parsing and is not mutated after Parse returns.
type Scene struct {
	Version int32
	Info    ModelInfo

	Sequences       []*Sequence
	GlobalSequences []uint32
	Textures        []*Texture
	Materials       []*Material
	Geosets         []*Geoset
	GeosetAnims     []*GeosetAnim

	Bones            []*Node
	Helpers          []*Node
	Attachments      []*Node
	EventObjects     []*Node
	CollisionShapes  []*Node
	ParticleEmitters []*ParticleEmitter // legacy variant, not a Node
	ParticleEmitter2 []*Node
	Lights           []*Node
	RibbonEmitters   []*Node

	Cameras      []*Camera
	TextureAnims []*TVertexAnim

	PivotPoints [][3]float32
	Nodes       []*Node
}

func newScene() *Scene {
	return &Scene{
		Version: 800,
		Info:    ModelInfo{BlendTime: 150},
	}
}
