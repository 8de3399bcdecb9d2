// Package android discovers the shape of an Android Gradle project: which
// Gradle scripts exist and in which dialect, which Application class the
// manifest declares, and which source files are Application class candidates.
//
// Discovery is read-only. The integrator package consumes the resulting
// Project to decide where edits go.
package android
