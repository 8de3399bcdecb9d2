// Package gradle models Android Gradle build and settings scripts and edits
// them in place.
//
// A Script is loaded into memory, edited through idempotent Ensure* methods,
// and written back with Save. Both the Groovy and the Kotlin DSL dialects are
// supported; dialect is derived from the file extension and determines the
// exact syntax of the inserted declarations.
//
// Edits are deliberately textual. Gradle scripts are programs, and a full
// parse would require evaluating them; inserting after the opening brace of
// the first matching block mirrors what a developer following the UXCam
// integration guide does by hand, and preserves the rest of the file
// byte-for-byte.
package gradle
