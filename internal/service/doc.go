// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between the persistent store and the
// cache (defined in internal/store and internal/cache) to fulfill
// application features.
//
// The central piece is the cache-aside TaskService: reads consult the cache
// first and lazily populate it from the store on a miss; writes go to the
// store only and invalidate the affected cache entries, never writing task
// data into the cache themselves. The store is always the source of truth;
// cache failures degrade to store reads and are never surfaced to callers.
package service
