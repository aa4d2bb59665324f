package api

import "github.com/samber/lo"

// MergeServers merges incoming server entries into existing ones with
// whole-entry overwrite semantics: every name in incoming replaces any
// existing entry of the same name completely, since a partial overwrite of
// command/args would produce an inconsistent launch spec. Names present only
// in existing are preserved. A new registry is returned; neither input is
// mutated.
//
// Use this for heuristically extracted data. For fully formed, trusted
// configuration documents use DeepMerge instead.
func MergeServers(existing, incoming Registry) Registry {
	return lo.Assign(existing, incoming)
}

// DeepMerge merges src into dst recursively, key by key, descending into
// nested mappings. Scalar and array values from src overwrite dst. A new
// mapping is returned; neither input is mutated.
//
// This variant is meant for injecting trusted, already-normalized
// configuration documents into a store, never for heuristically extracted
// text.
func DeepMerge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}

	for k, v := range src {
		if existing, ok := out[k]; ok {
			em, eok := existing.(map[string]any)
			sm, sok := v.(map[string]any)
			if eok && sok {
				out[k] = DeepMerge(em, sm)
				continue
			}
		}
		out[k] = v
	}

	return out
}
