/*
Package uniqr collapses runs of equal adjacent lines of a text stream,
like the uniq(1) utility. The stream is read line by line and only the
current run is kept in memory, i.e. the first line of the run and the
number of lines seen so far. Input of any length can be processed.

Two lines are equal if their content without the line terminator is
equal. The terminator is "\n", "\r\n" or nothing for a last line that
is not terminated. For each run the first line is written verbatim,
including its terminator:

	a⏎
	a␍⏎
	b

becomes

	a⏎
	b

With Deduplicator.ShowCounts each output line is prefixed with the
number of lines in its run, right-aligned in a field of at least four
characters and followed by a space:

	   2 a⏎
	   1 b

Only adjacent lines are compared. To remove all duplicates from a text
it has to be sorted first.

Lines are treated as opaque bytes. There is no check for valid text
encoding and no normalization of any kind besides stripping the line
terminator for comparison.

# Errors

Processing stops at the first error reading the input or writing the
output. Those errors are reported as *IOError. Output that was already
written is not taken back. *OpenError is used by package uniqrio when a
named input or output cannot be opened.
*/
package uniqr
