// Package codegen generates C++ declarations and definitions for MobileGL
// GL functions.
//
// GL functions are listed in a definitions file, one per line, with
// declaration macros:
//
//	DECLARE_GL_FUNCTION_STUB_HEAD(void, glClear, GLbitfield mask) DECLARE_GL_FUNCTION_STUB_END(glClear, mask)
//
// Implementing a function for a component turns its stub macros into real
// ones and then inserts code at insertion-point markers:
//
//   - the declaration goes into <impl dir>/<component>/GL_<component>.h
//     after the FUNCTION_DECLARATION marker;
//   - an empty definition goes into GL_<component>.cpp after the
//     FUNCTION_IMPLEMENTATION marker;
//   - GL_<component>.cpp is added to the build file after the
//     SOURCE_FILE_GLIMPL marker unless it is already listed.
//
// Missing component files are created from templates that already contain
// the markers.
//
// # Basic Usage
//
//	gen := codegen.New(codegen.DefaultConfig(), os.Stdout)
//	if err := gen.Implement("glClear", "Framebuffer"); err != nil {
//	    log.Fatal(err)
//	}
package codegen
