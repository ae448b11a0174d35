// Package markup handles the inline "&<code>" markup used in configuration values.
//
// Codes 0-9 and a-f select colors, k-o select formatting (obfuscated, bold,
// strikethrough, underline, italic), r resets and x prefixes hex colors.
// Codes are case-insensitive.
//
// Legacy performs the textual substitution applied to string values read from
// configuration. Renderer turns the same codes into terminal styling with
// lipgloss for console output, and Strip removes them for plain-text sinks.
package markup
