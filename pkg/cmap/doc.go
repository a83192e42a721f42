// Package cmap provides a concurrent string-keyed map split into shards.
//
// Keys are spread across shards with murmur3, so lookups on different keys
// rarely contend on the same lock. The model layer uses it as the ID index
// for students and lessons.
//
// Usage:
//
//	m := cmap.New[*domain.Student]()
//	m.Set(s.ID, s)
//	s, ok := m.Get(id)
//
// All operations are safe for concurrent use. Range holds one shard's read
// lock at a time, so it does not observe a single consistent view.
package cmap
