// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package cache provides the in-memory TTL cache for computed dashboard payloads.

The library is immutable after load, so a dashboard computed for a given
selection state stays valid until its TTL expires. The API layer keys entries
with GenerateKey over the normalised selection map:

	c := cache.New("dashboard", 5*time.Minute)
	key := cache.GenerateKey("dashboard", selections)
	if v, ok := c.Get(key); ok {
	    return v.(models.Dashboard)
	}

Expired entries are dropped lazily on Get and in bulk by Serve, which runs the
periodic cleanup under the supervisor tree. Hits, misses, entry counts and
evictions are exported through the cache_* Prometheus metrics labelled with
the cache name.
*/
package cache
