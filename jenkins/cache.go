package jenkins

import (
	"github.com/arekfu/carlo/go/sklog"
	"github.com/arekfu/carlo/go/util"
)

// ServerID names a configured CI server; JobName names a job on one server.
// (ServerID, JobName) is the cache's key.
type ServerID = string
type JobName = string

// Timestamp is a monotonically-assigned, opaque total order over builds, as
// reported by the CI server.
type Timestamp = uint64

// BuildCache tracks, per (ServerID, JobName), the timestamp of the most
// recently observed completed build. It is owned exclusively by one
// CIPoller and is not safe for concurrent use.
type BuildCache struct {
	servers map[ServerID]map[JobName]Timestamp
}

// NewBuildCache returns an empty cache.
func NewBuildCache() *BuildCache {
	return &BuildCache{servers: map[ServerID]map[JobName]Timestamp{}}
}

// Insert records timestamp for (server, name), returning the previous value
// and whether one existed. It never deletes, and creates the per-server
// sub-map on first use.
func (c *BuildCache) Insert(server ServerID, name JobName, timestamp Timestamp) (prev Timestamp, existed bool) {
	sub, ok := c.servers[server]
	if !ok {
		sub = map[JobName]Timestamp{}
		c.servers[server] = sub
	}
	prev, existed = sub[name]
	sub[name] = timestamp
	return prev, existed
}

// PruneExcept retains, under server, only the entries whose name is in keep.
// Other servers are untouched. If server has no sub-map yet, one is created
// (observable only as presence in iteration).
func (c *BuildCache) PruneExcept(server ServerID, keep util.StringSet) {
	sub, ok := c.servers[server]
	if !ok {
		sub = map[JobName]Timestamp{}
		c.servers[server] = sub
	}
	for name := range sub {
		if !keep[name] {
			delete(sub, name)
		}
	}
	sklog.Infof("jenkins: builds kept for %s after pruning: %d", server, len(sub))
}

// Size returns the number of entries tracked under server.
func (c *BuildCache) Size(server ServerID) int {
	return len(c.servers[server])
}
