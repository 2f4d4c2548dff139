// Package main runs the coplot gallery, an HTTP server that renders the
// registered figures on demand from their sample tables.
//
// HTTP API
//
//	GET /
//	    HTML index with a thumbnail and download links per figure.
//
//	GET /figures
//	    List the registered figures as JSON: name, title, description and
//	    preferred size in inches.
//
//	GET /figure/{name}.{ext}?w=W&h=H
//	    Render {name} in the format named by {ext} (png, svg, pdf, eps,
//	    jpg, tif). The optional w and h parameters override the figure's
//	    preferred size in inches.
//
//	GET /figure/{name}/thumb.png
//	    Small axis-less preview chart built from the figure's sketch.
//
// Behaviour
//
//   - Rendered bytes are cached per figure, format and size. The figure
//     set is fixed at startup, so cache entries never go stale.
//   - Responses are JSON, HTML or image bytes. Non-2xx statuses carry a
//     short error message.
//   - A lightweight access log records remote, method, path, status, bytes
//     and duration for each request.
//   - The listen address defaults to :8080; COPLOT_ADDR or -addr override.
package main
