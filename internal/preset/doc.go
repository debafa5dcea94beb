// Package preset persists named pipeline configurations as JSON.
//
// A presets file is an array of {name, operations} objects with one
// operations entry per enabled kind. The document keys follow the
// original utility's preset format, so existing preset files load
// unchanged:
//
//	presets, _ := preset.Load(settings.PresetsPath)
//	if p, ok := preset.Find(presets, "cleanup"); ok {
//	    cfg := p.Config()
//	    // hand cfg to the batch runner
//	}
package preset
