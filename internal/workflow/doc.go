// Package workflow implements Temporal workflow definitions for the
// go-feedback engine.
//
// This package contains the orchestration logic that coordinates result
// assembly using the Temporal workflow engine. Workflows define the
// high-level process flow, state management, and coordination between
// activities.
//
// Key responsibilities include:
//
//   - Workflow definition and registration
//   - Error handling and retry policies
//   - Versioning support
//
// Workflows should not contain any non-deterministic operations such as
// random number generation, system time access, or external I/O. Such
// operations are delegated to activities.
package workflow
