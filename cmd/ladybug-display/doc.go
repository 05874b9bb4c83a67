/*
ladybug-display converts visualization set JSON documents into SVG
drawings, and optionally PNG rasters.

Each positional argument is a file path or a glob pattern (** is
supported for recursive matching). Every matched document is written
to the output directory as <name>.svg, and with -png also as
<name>.png. With -watch the command keeps running and re-converts a
file whenever it changes.
*/
package main
