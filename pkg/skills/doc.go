// Package skills holds the immutable catalog of skills shown by the
// visualization engine.
//
// # Overview
//
// A [Registry] is built once from a list of [Input] entries and never
// mutated afterwards. Each skill gets an ID equal to its registration
// index, so position state elsewhere in the engine can be stored in plain
// slices aligned with [Registry.All].
//
//	reg, err := skills.Build([]skills.Input{
//	    {Name: "Go", Level: 90, Connections: []string{"Docker"}},
//	    {Name: "Docker", Level: 80},
//	})
//
// # Connections
//
// Connections are declared by name and resolved into a symmetric adjacency
// matrix: two skills are connected if either one lists the other.
// [Registry.IsConnected] is O(1). A connection naming a skill that is not
// registered is tolerated; it simply never resolves and is reported by
// [Registry.Dangling] so tooling can warn about it.
//
// # Loading
//
// [LoadFile] and [Decode] read skills documents in JSON, TOML or YAML.
// All three share one shape, a top-level "skills" list:
//
//	[[skills]]
//	name = "Rust"
//	category = "Languages"
//	color = "#dea584"
//	level = 75
//	connections = ["Go"]
//
// Any "id" field in a document is ignored.
//
// # Errors
//
// [Build] rejects duplicate names with an [errors.DuplicateNameError]
// (code DUPLICATE_NAME) and malformed entries with PARSE_ERROR.
package skills
