// Package roman is a small, pure-Go toolkit for writing integers as
// classical Roman numerals.
//
// 🚀 What is in here?
//
//	numeral/         — the band encoder: range table, digit encoder, Convert
//	cmd/roman/       — command-line front end (convert, table)
//	internal/config  — TOML file + ROMAN_* environment configuration
//	internal/logging — slog-based structured logging for the CLI
//	internal/render  — text, JSON and YAML output
//
// ✨ Why this encoder?
//
//   - Digit by digit – every decimal place is encoded on its own against
//     three reference symbols (upper, middle, lower)
//   - Exact bands – the 3/4, 5/6 and 8/9 boundaries keep every run of a
//     symbol at three or fewer
//   - Pure – no shared mutable state, safe for concurrent callers
//   - Two notations – standard subtractive (IV) or the older additive (IIII)
//
// Quick example:
//
//	1990 = 1000 + 900 + 90
//	     =   M  +  CM +  XC  = MCMXC
//
//	go get github.com/katalvlaran/roman/numeral
package roman
