package mdl

// Node is the shared shape behind Bone, Helper, Attachment,
// EventObject, CollisionShape, ParticleEmitter2, Light and
// RibbonEmitter (§3). Rather than one interface implementation per
// kind, every Node carries all common fields plus an optional
// extension struct for whichever kind its Flags.TypeTag() names —
// the "single tagged variant... buckets hold pointers into a shared
// arena" design from §9. At most one extension field is non-nil,
// matching the type tag packed into Flags; Bone, Helper and Attachment
// have no extension struct, so all of them are nil for those kinds.
type Node struct {
	Name       string
	ObjectId   int32
	Parent     int32
	HasParent  bool
	PivotPoint *[3]float32
	Flags      NodeFlags

	Translation *AnimatedTrack[float32] // arity 3
	Rotation    *AnimatedTrack[float32] // arity 4 (quaternion)
	Scaling     *AnimatedTrack[float32] // arity 3
	Visibility  *AnimatedTrack[float32] // arity 1

	Path string // Attachment only

	// Extras accumulates number-valued keywords the handler did not
	// recognize, per the §9 design note on "dynamic record of unknown
	// properties": loose handlers keep these instead of erroring.
	Extras map[string]float64

	EventObject      *EventObjectData
	CollisionShape   *CollisionShapeData
	ParticleEmitter2 *ParticleEmitter2Data
	Light            *LightData
	RibbonEmitter    *RibbonEmitterData
}

// EventObjectData is EventObject's extra field (§3).
type EventObjectData struct {
	EventTrack []uint32
}

// CollisionShapeData is CollisionShape's extra fields (§3).
type CollisionShapeData struct {
	Shape    CollisionShapeType
	Vertices [][3]float32
	Radius   *float32
}

// ParticleEmitter2Data is ParticleEmitter2's extra fields (§3).
type ParticleEmitter2Data struct {
	Flags        ParticleEmitter2Flags
	FrameFlags   ParticleEmitter2FramesFlags
	FilterMode   ParticleEmitter2FilterMode
	SegmentColor    [][3]float32
	Alpha           [3]byte
	ParticleScaling [3]float32
	LifeSpanUVAnim  [3]uint32
	DecayUVAnim     [3]uint32
	TailUVAnim      [3]uint32
	TailDecayUVAnim [3]uint32
	Squirt          bool

	Speed        Property[float32]
	Latitude     Property[float32]
	EmissionRate Property[float32]
	Width        Property[float32]
	Length       Property[float32]
	Gravity      Property[float32]
	Variation    Property[float32]
}

// LightData is Light's extra fields (§3).
type LightData struct {
	LightType        LightType
	Color            Property[float32] // arity 3, RGB order
	AmbColor         Property[float32] // arity 3, RGB order
	Intensity        Property[float32]
	AmbIntensity     Property[float32]
	AttenuationStart Property[float32]
	AttenuationEnd   Property[float32]
}

// RibbonEmitterData is RibbonEmitter's extra fields (§3). Color is
// always static per §4.4 ("static Color BGR-reversed").
type RibbonEmitterData struct {
	HeightAbove  Property[float32]
	HeightBelow  Property[float32]
	Alpha        Property[float32]
	Color        [3]float32
	LifeSpan     float32
	TextureSlot  Property[int32]
	EmissionRate float32
	Rows         int32
	Columns      int32
	MaterialID   int32
	Gravity      float32
}

func newNode(typeTag NodeFlags) *Node {
	return &Node{
		Flags:  typeTag,
		Parent: -1,
		Extras: make(map[string]float64),
	}
}
