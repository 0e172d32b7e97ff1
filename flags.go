package mdl

// TextureFlags packs Textures[i] wrap behavior (§6).
type TextureFlags uint32

const (
	WrapWidth  TextureFlags = 1 << 0
	WrapHeight TextureFlags = 1 << 1
)

// FilterMode is a Layer's blend mode (§6).
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterTransparent
	FilterBlend
	FilterAdditive
	FilterAddAlpha
	FilterModulate
	FilterModulate2x
)

// LayerShading packs a Layer's shading flags (§6). The values 4 and 8
// (1 << 2 and 1 << 3) are reserved by the format and intentionally
// unused.
type LayerShading uint32

const (
	Unshaded     LayerShading = 1 << 0
	SphereEnvMap LayerShading = 1 << 1
	TwoSided     LayerShading = 1 << 4
	Unfogged     LayerShading = 1 << 5
	NoDepthTest  LayerShading = 1 << 6
	NoDepthSet   LayerShading = 1 << 7
)

// MaterialRenderMode packs a Material's render-mode flags (§6).
type MaterialRenderMode uint32

const (
	ConstantColor MaterialRenderMode = 1 << 0
	SortPrimsFarZ MaterialRenderMode = 1 << 4
	FullResolution MaterialRenderMode = 1 << 5
)

// GeosetAnimFlags packs a GeosetAnim's flags (§6).
type GeosetAnimFlags uint32

const (
	DropShadow GeosetAnimFlags = 1 << 0
)

// ParticleEmitterFlags packs the legacy ParticleEmitter's flags (§6).
type ParticleEmitterFlags uint32

const (
	EmitterUsesMDL ParticleEmitterFlags = 1 << 0
	EmitterUsesTGA ParticleEmitterFlags = 1 << 1
)

// ParticleEmitter2Flags packs ParticleEmitter2's behavioral flags (§6).
type ParticleEmitter2Flags uint32

const (
	PE2SortPrimsFarZ ParticleEmitter2Flags = 1 << 0
	PE2Unshaded      ParticleEmitter2Flags = 1 << 1
	PE2LineEmitter   ParticleEmitter2Flags = 1 << 2
	PE2Unfogged      ParticleEmitter2Flags = 1 << 3
	PE2ModelSpace    ParticleEmitter2Flags = 1 << 4
	PE2XYQuad        ParticleEmitter2Flags = 1 << 5
)

// ParticleEmitter2FramesFlags packs Head/Tail selection (§6).
type ParticleEmitter2FramesFlags uint32

const (
	FrameHead ParticleEmitter2FramesFlags = 1 << 0
	FrameTail ParticleEmitter2FramesFlags = 1 << 1
)

// ParticleEmitter2FilterMode is ParticleEmitter2's own filter mode
// enumeration — distinct from Layer's FilterMode (no "None" member,
// adds AlphaKey).
type ParticleEmitter2FilterMode int

const (
	PE2FilterTransparent ParticleEmitter2FilterMode = iota
	PE2FilterBlend
	PE2FilterAdditive
	PE2FilterAlphaKey
	PE2FilterModulate
	PE2FilterModulate2x
)

// CollisionShapeType distinguishes a CollisionShape's geometry (§6).
type CollisionShapeType int

const (
	ShapeBox CollisionShapeType = iota
	ShapeSphere
)

// LightType distinguishes a Light's kind (§6).
type LightType int

const (
	LightOmnidirectional LightType = iota
	LightDirectional
	LightAmbient
)

// NodeFlags packs both the node-type tag (occupying the low byte) and
// the behavioral flag bits (occupying higher bits) of a Node, per the
// design note in §9: "NodeType tag bits occupy a distinct bit range
// from NodeFlags." A node's Flags always carries exactly one type-tag
// bit (§3 invariant).
type NodeFlags uint32

// Node type tag bits. Exactly one is set on every Node.
const (
	NodeTypeBone NodeFlags = 1 << iota
	NodeTypeHelper
	NodeTypeAttachment
	NodeTypeCollisionShape
	NodeTypeEventObject
	NodeTypeParticleEmitter
	NodeTypeLight
	NodeTypeRibbonEmitter
)

// nodeTypeMask covers every NodeType tag bit.
const nodeTypeMask = NodeTypeBone | NodeTypeHelper | NodeTypeAttachment |
	NodeTypeCollisionShape | NodeTypeEventObject | NodeTypeParticleEmitter |
	NodeTypeLight | NodeTypeRibbonEmitter

// Behavioral flag bits, disjoint from the type-tag range above.
const (
	Billboarded NodeFlags = 1 << (8 + iota)
	BillboardedLockX
	BillboardedLockY
	BillboardedLockZ
	CameraAnchored
	DontInheritTranslation
	DontInheritRotation
	DontInheritScaling
)

// TypeTag returns the single NodeType bit set in f.
func (f NodeFlags) TypeTag() NodeFlags {
	return f & nodeTypeMask
}
