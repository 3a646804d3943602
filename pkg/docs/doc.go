// Package docs serves the API description document at /api-docs.
//
// The document is read from disk on every request so edits take effect
// immediately. A document that cannot be read or is not valid JSON yields
// 500 {"message":"Error reading file"}.
//
// Watcher optionally follows the file with fsnotify and logs when the
// document disappears, becomes malformed, or recovers, so operators learn of
// a broken document before a client does.
package docs
