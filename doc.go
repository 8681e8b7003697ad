// Package wonky measures how rough ("wonky") glyph outlines are, and how much
// rougher they become once overlapping contours are merged.
//
// Roughness is a property of the joins between consecutive segments of a
// subpath. A join contributes when its tangent angle is neither straight nor
// a right angle; the contribution grows with the deviation from the nearest
// multiple of 90°, with the jump in curvature across the join, and shrinks
// with the length of the two segments that meet there. See [Roughness].
//
// [Compare] scores a path, removes its overlaps with [Simplify], and scores
// the result again. [Check] runs that comparison over every glyph of every
// named instance of a [Font] and reports glyphs whose roughness grew by more
// than a tolerance.
package wonky
