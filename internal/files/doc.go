// Package files provides feed document discovery and output file
// naming for the report processor.
//
// Discovery lists .xml feed documents in a working directory without
// recursing; the pipeline decides per file whether the content is
// usable. SanitizeFilename turns headlines into safe report file names.
package files
