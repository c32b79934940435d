// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the pipeline core and the outside world.
// They state what the pipeline needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [ImageSource]: Fetches one raw rendered image per date
//   - [Composer]: Stamps computed text onto a raw image
//   - [VideoEncoder]: Drives the external encoder over the frame directory
//   - [ManifestStore]: Persists the run manifest
//   - [Logger]: Structured logging abstraction
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) provide the concrete
// implementations (HTTP, raster compositing, ffmpeg, file system, zerolog),
// which keeps the pipeline testable with fakes and decouples its
// correctness from network and process availability.
package ports
