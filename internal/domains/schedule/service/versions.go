package service

import "sync"

// cacheVersions counts invalidations per date within this process.
type cacheVersions struct {
	mu       sync.Mutex
	versions map[string]uint64
}

func newCacheVersions() *cacheVersions {
	return &cacheVersions{versions: map[string]uint64{}}
}

func (v *cacheVersions) current(date string) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.versions[date]
}

func (v *cacheVersions) bump(date string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.versions[date]++
}
