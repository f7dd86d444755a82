package launcher

import "strings"

// cmdMeta are the characters cmd.exe acts on outside double quotes.
const cmdMeta = `()%!^"<>&|`

// quoteArgv quotes w so CommandLineToArgvW returns it unchanged.
func quoteArgv(w string) string {
	var b strings.Builder
	b.WriteByte('"')
	slashes := 0
	for i := 0; i < len(w); i++ {
		switch c := w[i]; c {
		case '\\':
			slashes++
		case '"':
			b.WriteString(strings.Repeat(`\`, slashes+1))
			b.WriteByte(c)
			slashes = 0
			continue
		default:
			slashes = 0
		}
		b.WriteByte(w[i])
	}
	b.WriteString(strings.Repeat(`\`, slashes))
	b.WriteByte('"')
	return b.String()
}

// escapeCmd prefixes every cmd.exe metacharacter with a caret. The quotes
// added by quoteArgv are escaped too, so cmd.exe never enters a quoted
// region and expands nothing.
func escapeCmd(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(cmdMeta, r) {
			b.WriteByte('^')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cmdLine builds the full command line for running words through
// cmd.exe. /S strips only the outer quotes around the /C payload.
func cmdLine(cmdExe string, words []string) string {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = escapeCmd(quoteArgv(w))
	}
	return quoteArgv(cmdExe) + ` /D /S /C "` + strings.Join(escaped, " ") + `"`
}
