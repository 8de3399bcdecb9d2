// Package server exposes the UXCam Android integration over the Model
// Context Protocol.
//
// The server registers three tools — add_uxcam_android, verify_uxcam_android
// and detect_android_project — plus uxcam://snippet/{java,kotlin} resources
// previewing the initialization code. It serves them over stdio (the default,
// for AI assistant integration), SSE, or streamable HTTP.
//
// Tool results are JSON documents; integration failures inside the project
// (missing Gradle scripts, no Application class) are reported inside the
// document, while tool-level errors are reserved for bad arguments and
// unexpected I/O failures.
package server
