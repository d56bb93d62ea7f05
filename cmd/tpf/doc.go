// Tpf formats its arguments with the tpf engine, like printf(1):
//
//	tpf '%-10s|%5d|%#x\n' name 42 255
//
// Backslash escapes in FORMAT (\n, \t, \NNN, \xHH) are interpreted.
// Arguments are strings converted on demand: integers accept 0x, 0 and 0b
// prefixes, and a leading quote yields a character code.
//
// Exit codes:
//
//	0  output written
//	1  formatting failed (a diagnostic is printed unless --quiet)
//	2  bad arguments or configuration
//
// With --list the registered specifiers are printed instead, as plain lines,
// JSON or YAML (--list-format).
package main
