package mdl

// handleVersion implements the Version block (§4.4): a single object
// whose FormatVersion key, if present, overrides the Scene default.
func handleVersion(s *scanner, scene *Scene) error {
	b, err := s.readBody()
	if err != nil {
		return err
	}
	if v, ok := b.num("FormatVersion"); ok {
		scene.Version = truncInt32(v)
	}
	return nil
}

// handleModel implements the Model block (§4.4): the prefix is the
// model name; BlendTime, MinimumExtent, MaximumExtent and BoundsRadius
// populate the info header. Any other key is ignored — the core does
// not track the legacy geoset/texture/material counters some MDL
// writers emit here, since the scene graph already carries the
// authoritative counts via slice lengths.
func handleModel(s *scanner, scene *Scene) error {
	name, hasName, _, _, err := s.readPrefix()
	if err != nil {
		return err
	}
	b, err := s.readBody()
	if err != nil {
		return err
	}
	if hasName {
		scene.Info.Name = name
	}
	if b.hasMinEx {
		scene.Info.MinimumExtent = b.minExtent
	}
	if b.hasMaxEx {
		scene.Info.MaximumExtent = b.maxExtent
	}
	if v, ok := b.num("BoundsRadius"); ok {
		scene.Info.BoundsRadius = float32(v)
	}
	if v, ok := b.num("BlendTime"); ok {
		scene.Info.BlendTime = truncInt32(v)
	}
	return nil
}
