// Package gallery serves rendered figures over HTTP and provides the
// matching client used by coplot fetch.
//
// The server renders registered figures on demand from their sample tables
// and caches the encoded bytes per figure, format and size. The figure set
// is fixed at startup, so cache entries never go stale. Thumbnails for the
// index page are small axis-less charts built from the figures' sketches.
//
// All structured responses are JSON; rendered figures carry their image
// media type. Non-2xx statuses carry a short error message.
package gallery
