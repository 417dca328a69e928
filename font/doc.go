// Package font turns font files into the glyph tables drawn by spx.
//
// A [Library] is the explicit handle for a font backend. Faces opened
// through it are released with the library, so a single deferred Close
// cleans up everything:
//
//	lib, err := font.NewLibrary()
//	if err != nil {
//	    return err
//	}
//	defer lib.Close()
//
//	f, err := lib.Load("DejaVuSans.ttf", 16)
//	if err != nil {
//	    return err
//	}
//	spx.DrawText(s, f, "Hello", spx.Pt(4, 20), spx.White)
//
// Two parser backends are built in: "ximage" (golang.org/x/image, the
// default) and "gotext" (github.com/go-text/typesetting outlines
// rasterized with golang.org/x/image/vector). Custom backends are added
// with [RegisterBackend].
//
// [Default] returns a built-in 7x13 bitmap font that needs no library.
package font
