// Package file loads and writes document corpora stored as TOML or YAML files.
//
// A TOML corpus file is a list of [[documents]] tables:
//
//	[[documents]]
//	id = "song-api"
//	title = "Song API"
//	description = "Retrieve detailed song information."
//	path = "/api/song"
//	section = "api_reference"
//	keywords = ["song", "track"]
//
// A YAML corpus file holds the same fields under a top-level documents
// sequence. Section accepts a slug or a display label ("API Reference"). The corpus
// bundled with docfind is embedded from builtin.toml and returned by Builtin.
package file
