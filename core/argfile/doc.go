// Package argfile expands option-file references embedded in a token
// list before an option parser sees it.
//
// A token whose first character is the hint prefix (`@` by default)
// names an option file whose tokenized contents replace it in place.
// Option files may reference further option files, a doubled prefix
// (`@@file`) defers resolution to a downstream consumer, and
// well-known startup files (installation directory, home directory,
// current directory) can be injected ahead of the caller's tokens so
// that later sources override earlier ones under last-value-wins
// option parsing.
package argfile
