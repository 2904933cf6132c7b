// Package render turns meeting dates and topics into a syllabus table and
// writes it in one of the supported output formats.
//
// Text formats (csv, tex, html) mirror what a user would paste into a
// spreadsheet, a LaTeX document or a web page. Cell content is inserted
// verbatim unless Options.Escape is set. Calendar (ics) and spreadsheet
// (xlsx) output are produced through their respective libraries.
package render
