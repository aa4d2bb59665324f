package api

import (
	"encoding/json"
	"regexp"
	"strings"
)

// maxNestingDepth bounds the brace-balanced block search. The canonical
// shape needs four levels (root, registry, server, env), heuristic inputs
// get a little headroom beyond that.
const maxNestingDepth = 6

// directParseStrategy succeeds when the whole document is a valid JSON
// object carrying a recognized configuration key
type directParseStrategy struct{}

func (s *directParseStrategy) Name() string { return "direct-parse" }

func (s *directParseStrategy) TryExtract(doc string) (Registry, bool) {
	return parseRegistry(doc)
}

// fencedBlockStrategy scans Markdown fenced code blocks for a configuration
// object. Each candidate block is parsed strictly first, then leniently
// after comment stripping, trailing-comma removal, and brace balancing.
type fencedBlockStrategy struct{}

// fencedBlockPattern captures the body of ``` fenced blocks with an
// optional language tag
var fencedBlockPattern = regexp.MustCompile("(?s)```[a-zA-Z0-9_-]*[ \t]*\r?\n?(.*?)```")

func (s *fencedBlockStrategy) Name() string { return "fenced-block" }

func (s *fencedBlockStrategy) TryExtract(doc string) (Registry, bool) {
	matches := fencedBlockPattern.FindAllStringSubmatch(doc, -1)
	for _, m := range matches {
		content := strings.TrimSpace(m[1])
		if !isCandidateBlock(content) {
			continue
		}

		if reg, ok := parseRegistry(content); ok {
			return reg, true
		}
		if cleaned := lenientCleanup(content); cleaned != content {
			if reg, ok := parseRegistry(cleaned); ok {
				return reg, true
			}
		}
	}
	return nil, false
}

// isCandidateBlock reports whether a fenced block plausibly holds a
// configuration object worth parsing
func isCandidateBlock(content string) bool {
	if !strings.Contains(content, "{") {
		return false
	}
	return strings.Contains(content, `"`+canonicalKey+`"`) || strings.Contains(content, `"`+alternateKey+`"`)
}

// serverPatternStrategy scans for repeated textual per-server patterns of
// the shape "<name>": { "command": "...", "args": [...] } and accumulates
// every match into one registry. It tolerates partial or truncated
// documents where no single block is complete JSON.
type serverPatternStrategy struct{}

var serverEntryPattern = regexp.MustCompile(`"([^"\n]+)"\s*:\s*\{\s*"command"\s*:\s*"([^"\n]+)"\s*,\s*"args"\s*:\s*\[([^\]]*)\]`)

func (s *serverPatternStrategy) Name() string { return "server-pattern" }

func (s *serverPatternStrategy) TryExtract(doc string) (Registry, bool) {
	matches := serverEntryPattern.FindAllStringSubmatch(doc, -1)
	if len(matches) == 0 {
		return nil, false
	}

	reg := make(Registry, len(matches))
	for _, m := range matches {
		name := m[1]
		if name == canonicalKey || name == alternateKey || name == alternateSubKey {
			continue
		}
		// The first positional occurrence of a name wins
		if _, exists := reg[name]; exists {
			continue
		}
		reg[name] = ServerConfig{
			"command": m[2],
			"args":    parseArgsCapture(m[3]),
		}
	}

	if len(reg) == 0 {
		return nil, false
	}
	return reg, true
}

// parseArgsCapture parses the args capture as a JSON array first, falling
// back to splitting on commas and stripping quote characters
func parseArgsCapture(capture string) []string {
	capture = strings.TrimSpace(capture)
	if capture == "" {
		return []string{}
	}

	var parsed []string
	if err := json.Unmarshal([]byte("["+capture+"]"), &parsed); err == nil {
		return parsed
	}

	parts := strings.Split(capture, ",")
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `"'`)
		if p != "" {
			args = append(args, p)
		}
	}
	return args
}

// balancedBlockStrategy is the last resort: locate a substring starting at
// a recognized configuration key whose braces balance within a bounded
// nesting depth, and parse it
type balancedBlockStrategy struct{}

func (s *balancedBlockStrategy) Name() string { return "balanced-block" }

func (s *balancedBlockStrategy) TryExtract(doc string) (Registry, bool) {
	for _, key := range []string{`"` + canonicalKey + `"`, `"` + alternateKey + `"`} {
		offset := 0
		for {
			idx := strings.Index(doc[offset:], key)
			if idx == -1 {
				break
			}
			idx += offset

			if candidate, ok := balancedObjectAround(doc, idx); ok {
				if reg, ok := parseRegistry(candidate); ok {
					return reg, true
				}
				if reg, ok := parseRegistry(lenientCleanup(candidate)); ok {
					return reg, true
				}
			}

			offset = idx + 1
		}
	}
	return nil, false
}

// balancedObjectAround extracts the JSON object enclosing the key found at
// keyIdx. When no opening brace immediately precedes the key, one is
// synthesized so that bare `"mcpServers": {...}` fragments still parse.
func balancedObjectAround(doc string, keyIdx int) (string, bool) {
	start := -1
	for j := keyIdx - 1; j >= 0; j-- {
		c := doc[j]
		if c == '{' {
			start = j
			break
		}
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			break
		}
	}

	var text string
	if start == -1 {
		text = "{" + doc[keyIdx:]
	} else {
		text = doc[start:]
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
			if depth > maxNestingDepth {
				return "", false
			}
		case '}':
			depth--
			if depth == 0 {
				return text[:i+1], true
			}
		}
	}

	return "", false
}
