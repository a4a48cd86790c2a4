package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/arcdoc"
	"github.com/fwojciec/arcdoc/crawl"
	"github.com/fwojciec/arcdoc/process"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Profile   *arcdoc.SiteProfile
	Crawler   *crawl.Crawler
	Sitemaps  arcdoc.SitemapService
	Index     arcdoc.IndexWriter
	Runs      arcdoc.RunService
	Processor *process.Processor

	// DocsDir and OutDir are the resolved process command directories.
	DocsDir string
	OutDir  string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl   CrawlCmd   `cmd:"" help:"Crawl a documentation site breadth-first"`
	Process ProcessCmd `cmd:"" help:"Build derived artifacts from captured pages"`
	Runs    RunsCmd    `cmd:"" help:"List archived crawl runs"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Seeds       []string `arg:"" optional:"" help:"Seed URLs (default: the profile's seeds)"`
	Profile     string   `short:"p" help:"Site profile YAML path"`
	Out         string   `short:"o" help:"Output directory (default: the profile's)"`
	MaxPages    int      `help:"Page cap, failed fetches included"`
	Delay       *float64 `help:"Seconds to wait between requests"`
	Selector    string   `help:"CSS selector for the content region, or auto to detect per page"`
	Article     bool     `help:"Article-mode content extraction instead of the selector"`
	Mirror      bool     `help:"Write a markdown mirror beside the JSON records"`
	FromSitemap bool     `help:"Add the site's sitemap URLs to the seeds"`
	DB          string   `help:"Archive database path (default: $ARCDOC_DB or the XDG data dir)"`
	Verbose     bool     `short:"v" help:"Debug logging"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	Docs       string `help:"Captured pages directory (default: the profile's output dir)"`
	Out        string `help:"Processed output directory (default: <docs>_processed)"`
	GraphLimit int    `default:"100" help:"Node cap for the report's link-graph flowchart"`
	Report     bool   `default:"true" help:"Write crawl_report.md"`
	KB         bool   `name:"kb" default:"true" help:"Extract knowledge_base.json"`
	Profile    string `short:"p" help:"Site profile YAML path"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	DB string `help:"Archive database path (default: $ARCDOC_DB or the XDG data dir)"`
}
