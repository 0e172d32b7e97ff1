package mdl

import (
	_ "embed"

	"gopkg.in/yaml.v2"
)

//go:embed keywordtables.yaml
var keywordTablesYAML []byte

// flagTables is the shape of keywordtables.yaml: each entry maps the
// source file's bare keyword onto the symbolic name of the Go flag
// constant it packs. Decoupling the two lets the keyword spelling
// live in data instead of in a Go switch statement, the way
// gui.Builder keeps panel field names in YAML rather than in Go code.
type flagTables struct {
	LayerShading               map[string]string `yaml:"layerShading"`
	MaterialRenderMode         map[string]string `yaml:"materialRenderMode"`
	GeosetAnimFlags            map[string]string `yaml:"geosetAnimFlags"`
	ParticleEmitterFlags       map[string]string `yaml:"particleEmitterFlags"`
	ParticleEmitter2Flags      map[string]string `yaml:"particleEmitter2Flags"`
	NodeBehaviorFlags          map[string]string `yaml:"nodeBehaviorFlags"`
	FilterMode                 map[string]string `yaml:"filterMode"`
	ParticleEmitter2FilterMode map[string]string `yaml:"particleEmitter2FilterMode"`
}

var tables flagTables

func init() {
	if err := yaml.Unmarshal(keywordTablesYAML, &tables); err != nil {
		panic("mdl: invalid keywordtables.yaml: " + err.Error())
	}
}

var layerShadingByName = map[string]LayerShading{
	"Unshaded": Unshaded, "SphereEnvMap": SphereEnvMap, "TwoSided": TwoSided,
	"Unfogged": Unfogged, "NoDepthTest": NoDepthTest, "NoDepthSet": NoDepthSet,
}

var materialRenderModeByName = map[string]MaterialRenderMode{
	"ConstantColor": ConstantColor, "SortPrimsFarZ": SortPrimsFarZ, "FullResolution": FullResolution,
}

var geosetAnimFlagsByName = map[string]GeosetAnimFlags{
	"DropShadow": DropShadow,
}

var particleEmitterFlagsByName = map[string]ParticleEmitterFlags{
	"EmitterUsesMDL": EmitterUsesMDL, "EmitterUsesTGA": EmitterUsesTGA,
}

var particleEmitter2FlagsByName = map[string]ParticleEmitter2Flags{
	"PE2SortPrimsFarZ": PE2SortPrimsFarZ, "PE2Unshaded": PE2Unshaded, "PE2LineEmitter": PE2LineEmitter,
	"PE2Unfogged": PE2Unfogged, "PE2ModelSpace": PE2ModelSpace, "PE2XYQuad": PE2XYQuad,
}

var nodeBehaviorFlagsByName = map[string]NodeFlags{
	"Billboarded": Billboarded, "BillboardedLockX": BillboardedLockX, "BillboardedLockY": BillboardedLockY,
	"BillboardedLockZ": BillboardedLockZ, "CameraAnchored": CameraAnchored,
}

var filterModeByName = map[string]FilterMode{
	"FilterNone": FilterNone, "FilterTransparent": FilterTransparent, "FilterBlend": FilterBlend,
	"FilterAdditive": FilterAdditive, "FilterAddAlpha": FilterAddAlpha, "FilterModulate": FilterModulate,
	"FilterModulate2x": FilterModulate2x,
}

var particleEmitter2FilterModeByName = map[string]ParticleEmitter2FilterMode{
	"PE2FilterTransparent": PE2FilterTransparent, "PE2FilterBlend": PE2FilterBlend,
	"PE2FilterAdditive": PE2FilterAdditive, "PE2FilterAlphaKey": PE2FilterAlphaKey,
	"PE2FilterModulate": PE2FilterModulate, "PE2FilterModulate2x": PE2FilterModulate2x,
}

func layerShadingBit(keyword string) (LayerShading, bool) {
	name, ok := tables.LayerShading[keyword]
	if !ok {
		return 0, false
	}
	bit, ok := layerShadingByName[name]
	return bit, ok
}

func materialRenderModeBit(keyword string) (MaterialRenderMode, bool) {
	name, ok := tables.MaterialRenderMode[keyword]
	if !ok {
		return 0, false
	}
	bit, ok := materialRenderModeByName[name]
	return bit, ok
}

func geosetAnimFlagBit(keyword string) (GeosetAnimFlags, bool) {
	name, ok := tables.GeosetAnimFlags[keyword]
	if !ok {
		return 0, false
	}
	bit, ok := geosetAnimFlagsByName[name]
	return bit, ok
}

func particleEmitterFlagBit(keyword string) (ParticleEmitterFlags, bool) {
	name, ok := tables.ParticleEmitterFlags[keyword]
	if !ok {
		return 0, false
	}
	bit, ok := particleEmitterFlagsByName[name]
	return bit, ok
}

func particleEmitter2FlagBit(keyword string) (ParticleEmitter2Flags, bool) {
	name, ok := tables.ParticleEmitter2Flags[keyword]
	if !ok {
		return 0, false
	}
	bit, ok := particleEmitter2FlagsByName[name]
	return bit, ok
}

func nodeBehaviorFlagBit(keyword string) (NodeFlags, bool) {
	name, ok := tables.NodeBehaviorFlags[keyword]
	if !ok {
		return 0, false
	}
	bit, ok := nodeBehaviorFlagsByName[name]
	return bit, ok
}

func filterModeValue(keyword string) (FilterMode, bool) {
	name, ok := tables.FilterMode[keyword]
	if !ok {
		return 0, false
	}
	v, ok := filterModeByName[name]
	return v, ok
}

func particleEmitter2FilterModeValue(keyword string) (ParticleEmitter2FilterMode, bool) {
	name, ok := tables.ParticleEmitter2FilterMode[keyword]
	if !ok {
		return 0, false
	}
	v, ok := particleEmitter2FilterModeByName[name]
	return v, ok
}
