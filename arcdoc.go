// Package arcdoc archives a documentation website. It crawls the site
// breadth-first, persists each page's text and outbound links as JSON
// records, and post-processes the captured pages into a browsable static
// site, a link graph, and a small extracted knowledge base.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package arcdoc
