package editor

// Key defusal for tmux send-keys. send-keys interprets its arguments as
// key names first and literal text second, so a path sent as one token
// could collide with a key name, and an unescaped space would be read
// as a token separator rather than a character. Splitting the path into
// single-character tokens removes the first hazard (no single character
// is a key name) and escaping spaces removes the second.

// escapedSpace is the send-keys token for a literal space character.
const escapedSpace = `\ `

// pathKeys converts a file path into defused send-keys tokens, one per
// character.
func pathKeys(path string) []string {
	keys := make([]string, 0, len(path))
	for _, r := range path {
		if r == ' ' {
			keys = append(keys, escapedSpace)
			continue
		}
		keys = append(keys, string(r))
	}
	return keys
}

// commandKeys builds the token sequence that types an ex command for
// path and submits it: the command itself, a separating space, the
// defused path, and Enter.
func commandKeys(command, path string) []string {
	keys := make([]string, 0, len(path)+3)
	keys = append(keys, command, escapedSpace)
	keys = append(keys, pathKeys(path)...)
	return append(keys, "Enter")
}
