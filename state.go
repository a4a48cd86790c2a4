package arcdoc

// CrawlState identifies where a crawl run is in its lifecycle.
type CrawlState string

// Crawl lifecycle states. A run moves Idle → Running, leaves the loop as
// Draining (page cap reached with URLs still queued; the remainder is
// discarded) or Completed (frontier exhausted), and settles at Terminated
// once the final checkpoint is flushed. Cancellation jumps straight from
// Running to Terminated after the flush.
const (
	StateIdle       CrawlState = "idle"
	StateRunning    CrawlState = "running"
	StateDraining   CrawlState = "draining"
	StateCompleted  CrawlState = "completed"
	StateTerminated CrawlState = "terminated"
)
