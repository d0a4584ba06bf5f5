// Package server implements the MCP (Model Context Protocol) server for seam carving.
//
// This package provides a JSON-RPC 2.0 server that exposes content-aware resizing
// through the MCP protocol. Clients open a picture into a session, inspect its
// energy, and remove seams one at a time until the picture has the size they want.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// The notifications/initialized notification gets no response.
//
// # Available Tools
//
// Session Management:
//   - seam_open: Load an image file into a new session
//   - seam_close: Release a session
//   - seam_dimensions: Current width and height
//
// Energy and Seams:
//   - seam_energy: Energy of one pixel
//   - seam_find: Lowest-energy vertical or horizontal seam
//   - seam_remove: Remove a given seam, or the lowest-energy one
//
// Rendering:
//   - seam_picture: Current picture as base64 PNG
//   - seam_energy_map: Energy as a grayscale PNG
//   - seam_overlay: Picture with the next seam highlighted
//   - seam_save: Write the current picture to disk
//
// # Sessions
//
// Each session owns one carver. Calls on the same session are serialized by a
// per-session lock; different sessions proceed independently. The number of
// open sessions is bounded by Config.MaxSessions.
//
// Decoded source images are cached by path, so reopening a file skips the
// decode. Every session still gets its own copy of the pixels.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.Config{MaxSessions: 8})
//	if err := srv.Run(); err != nil {
//	    logrus.Fatal(err)
//	}
package server
