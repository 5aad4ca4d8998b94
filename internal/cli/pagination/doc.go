// Package pagination provides the CLI pagination flags of the demo command.
//
// Two mutually exclusive modes are supported:
//   - Offset-based: --limit and --offset
//   - Page-based: --page and --page-size
//
// Apply slices any composed view; PaginationMeta describes the page that was
// returned so JSON output and the footer can report it.
package pagination
