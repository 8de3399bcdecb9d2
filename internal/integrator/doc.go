// Package integrator orchestrates the UXCam Android SDK integration: it
// discovers the project, ensures the Maven repository and SDK dependency are
// declared in the Gradle scripts, and injects the initialization call into
// the Application class.
//
// Every run produces a Report with one Step per integration point. Steps
// degrade gracefully: a missing settings script or Application class becomes
// a failed or skipped step with a human-readable detail, never a hard error,
// so an MCP client always receives a full report it can act on.
//
// Verify performs the same discovery read-only, and Watcher (fsnotify)
// re-checks the project as files change during serve --watch.
package integrator
