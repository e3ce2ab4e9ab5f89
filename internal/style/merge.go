package style

import (
	"maps"

	"dario.cat/mergo"
)

// MergeStyles merges style layers into a new map. The right-most layer wins
// per property. A nil value in a later layer removes the property.
func MergeStyles(layers ...StyleOptions) StyleOptions {
	out := make(StyleOptions)
	for _, layer := range layers {
		for k, v := range layer {
			if v == nil {
				delete(out, k)
				continue
			}
			out[k] = v
		}
	}
	return out
}

// MergeOptions merges renderer option layers into a new value.
// Block and inline maps merge per element kind (overriding h1.color keeps
// h1.fontSize). Base fields merge field by field; the last non-empty code
// theme wins.
func MergeOptions(layers ...RendererOptions) RendererOptions {
	out := RendererOptions{
		Block:  make(map[string]StyleOptions),
		Inline: make(map[string]StyleOptions),
	}

	for _, layer := range layers {
		// Merging two flat string structs cannot fail.
		_ = mergo.Merge(&out.Base, layer.Base, mergo.WithOverride)

		mergeKinds(out.Block, layer.Block)
		mergeKinds(out.Inline, layer.Inline)

		if layer.CodeTheme != "" {
			out.CodeTheme = layer.CodeTheme
		}
	}
	return out
}

// mergeKinds merges src into dst per element kind, copying so dst never
// aliases a layer's maps.
func mergeKinds(dst, src map[string]StyleOptions) {
	for kind, s := range src {
		if existing, ok := dst[kind]; ok {
			dst[kind] = MergeStyles(existing, s)
			continue
		}
		dst[kind] = MergeStyles(s)
	}
}

// Resolve builds the options for one render pass:
// defaults, then the template preset, then user overrides.
func Resolve(preset, overrides RendererOptions) RendererOptions {
	return MergeOptions(Defaults(), preset, overrides)
}

// Clone returns a deep copy of o.
func (o RendererOptions) Clone() RendererOptions {
	out := o
	out.Block = make(map[string]StyleOptions, len(o.Block))
	for k, v := range o.Block {
		out.Block[k] = maps.Clone(v)
	}
	out.Inline = make(map[string]StyleOptions, len(o.Inline))
	for k, v := range o.Inline {
		out.Inline[k] = maps.Clone(v)
	}
	return out
}
