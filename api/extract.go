package api

import (
	"encoding/json"
	"strings"

	"github.com/morikuni/failure/v2"

	"github.com/mcpup/mcpup/log"
)

// Strategy is one extraction approach tried against a document. TryExtract
// returns the recovered registry and true on success, or false when the
// strategy does not apply to the document.
type Strategy interface {
	// Name identifies the strategy in logs
	Name() string

	// TryExtract attempts to recover a registry from the document
	TryExtract(doc string) (Registry, bool)
}

// strategies is the extraction chain in priority order, from the most
// structurally trustworthy parse down to the loosest heuristic. Each entry
// is attempted only if the previous one yielded nothing.
var strategies = []Strategy{
	&directParseStrategy{},
	&fencedBlockStrategy{},
	&serverPatternStrategy{},
	&balancedBlockStrategy{},
}

// Extract recovers an MCP server registry from a document: a literal JSON
// configuration, a README, or any text containing configuration snippets.
// A registry with zero entries is treated as failure, never as success.
func Extract(document string) (Registry, error) {
	doc := strings.TrimSpace(document)
	if doc == "" {
		return nil, failure.New(ErrSchema,
			failure.Message("No MCP server configuration found: document is empty"),
		)
	}

	for _, s := range strategies {
		if reg, ok := s.TryExtract(doc); ok && len(reg) > 0 {
			log.Debug("extraction strategy succeeded",
				"strategy", s.Name(),
				"servers", len(reg),
			)
			return reg, nil
		}
	}

	return nil, extractionFailure(doc)
}

// extractionFailure distinguishes "no configuration present" from
// "configuration present but malformed" for the diagnostic message
func extractionFailure(doc string) error {
	if json.Valid([]byte(doc)) {
		return failure.New(ErrSchema,
			failure.Message("Valid JSON but no MCP server configuration found"),
		)
	}

	if strings.Contains(doc, `"`+canonicalKey+`"`) || strings.Contains(doc, `"`+alternateKey+`"`) {
		return failure.New(ErrParse,
			failure.Message("Found configuration-like text but no extraction strategy produced a valid registry"),
		)
	}

	return failure.New(ErrSchema,
		failure.Message("No MCP server configuration found in document"),
	)
}

// parseRegistry parses text as a JSON object and normalizes it to the
// canonical registry shape. It reports false unless the result holds at
// least one server entry.
func parseRegistry(text string) (Registry, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, false
	}

	reg, err := Normalize(raw)
	if err != nil || len(reg) == 0 {
		return nil, false
	}
	return reg, true
}
