package util

import "strings"

// StripCodeFences removes markdown code-fence markers wherever the model put
// them, not just at the edges.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
