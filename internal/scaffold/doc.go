// Package scaffold renders template sets into source files. It powers the
// "mikrus generate" command: Render is a pure function from a validated
// identifier and a template to a target path and file content, and Generate
// hands that result to a Writer unless the run is a dry run.
package scaffold
