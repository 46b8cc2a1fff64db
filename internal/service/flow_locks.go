package service

import (
	"hash/fnv"
	"sync"
)

const flowLockStripes = 64

// flowLocks serialises load-mutate-save per flow id within this process.
type flowLocks struct {
	stripes [flowLockStripes]sync.Mutex
}

func (l *flowLocks) lock(flowID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(flowID))
	m := &l.stripes[h.Sum32()%flowLockStripes]
	m.Lock()
	return m.Unlock
}
