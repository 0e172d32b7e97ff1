// Package mdl parses the Warcraft III "MDL" text model format into a
// normalized in-memory scene graph.
//
// The grammar is a nested, brace-delimited sequence of top-level blocks
// (Version, Model, Sequences, Textures, Materials, Geoset, GeosetAnim,
// Bone, Helper, Attachment, PivotPoints, EventObject, CollisionShape,
// GlobalSequences, ParticleEmitter, ParticleEmitter2, Camera, Light,
// TextureAnims, RibbonEmitter). Unknown top-level blocks are skipped;
// a syntax error anywhere aborts the parse with no partial result.
//
// Parse is the single entry point:
//
//	scene, err := mdl.Parse(source)
//
// The returned *Scene is owned by the caller and is not mutated again.
package mdl
