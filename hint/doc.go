// Package hint issues resource-loading hints to the hosting environment.
//
// Hints are advisory: preload, prefetch, and preconnect are fire-and-forget
// signals that a resource will likely be needed soon. They never suspend the
// caller, never surface errors, and are completely independent of a resource
// loader's cache — a preload followed by a load for the same key still
// performs (or joins) a full load.
//
// Stylesheet registration is the one hint with a completion signal:
// LoadStylesheet blocks until the environment reports that the stylesheet
// has applied or failed.
package hint
