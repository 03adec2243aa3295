// Package fetch provides adapters for the resourceloader.Fetcher interface.
//
// The adapters wrap plain functions, fixed maps, and other fetchers so that
// they can be used as the fetch capability of a resource loader:
//   - Func: adapts a function to a Fetcher
//   - Static: serves resources from a fixed map, useful for tests and defaults
//   - SilentErrorFetcher: degrades failures to a fallback value instead of
//     propagating them, with an optional error tap
package fetch
