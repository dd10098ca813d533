// Package surface implements the owned, versioned text surface behind the
// mention input: an ordered list of text runs, atomic mention tokens and
// empty placeholders, plus the cursor-relative operations that rewrite it.
//
// Offsets are 0-based grapheme offsets within a node's content. A Cursor
// references either a text-bearing node (text run or placeholder) or the
// surface root, in which case Offset is a child index. Cursors never point
// inside a mention token.
//
// Every mutating operation returns the new cursor explicitly. A Cursor taken
// before a mutation must not be reused unless Resolve still accepts it.
package surface
