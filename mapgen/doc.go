// Package mapgen produces traversability bitmaps for grid construction.
//
// Sources:
//
//   - Open(w, h): every cell traversable.
//   - Parse(rows...): '.' traversable, anything else blocked.
//   - Perlin(w, h, opts): coherent noise terrain; low ground is blocked.
//   - CrossWalls(b): blocks the middle row and the middle column.
//   - Decode / LoadFile: PNG maps, white pixels traversable.
//
// A *Bitmap satisfies grid.Source, so it plugs straight into
// grid.NewFromSource; Image() renders it for grid.NewFromImage or Encode.
//
// Errors:
//
//   - ErrBadSize:  non-positive dimensions or ragged rows.
//   - ErrBadParam: Perlin scale <= 0 or threshold outside [0,1].
package mapgen
