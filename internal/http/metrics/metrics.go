package metrics

import "sync/atomic"

type Collector struct {
	requests uint64
	errors   uint64
	rankings uint64
	imports  uint64
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) IncRequests() {
	atomic.AddUint64(&c.requests, 1)
}

func (c *Collector) IncErrors() {
	atomic.AddUint64(&c.errors, 1)
}

func (c *Collector) IncRankings() {
	atomic.AddUint64(&c.rankings, 1)
}

func (c *Collector) IncImports() {
	atomic.AddUint64(&c.imports, 1)
}

type Snapshot struct {
	Requests uint64
	Errors   uint64
	Rankings uint64
	Imports  uint64
}

func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Requests: atomic.LoadUint64(&c.requests),
		Errors:   atomic.LoadUint64(&c.errors),
		Rankings: atomic.LoadUint64(&c.rankings),
		Imports:  atomic.LoadUint64(&c.imports),
	}
}
