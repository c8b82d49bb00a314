// Package history persists a record of past compression runs in SQLite.
//
// Each successful compression stores input/output paths, the preset and DPI
// used, and byte sizes before and after, so the history command can show what
// a preset actually bought. Recording is best-effort at the CLI layer; a
// failed insert never fails the compression itself.
package history
