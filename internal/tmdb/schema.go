package tmdb

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// The schema registry declares the exact shape of every TMDB response this
// client consumes. Provider JSON is validated against the matching schema
// before it is decoded into the typed models; nothing downstream ever sees
// unvalidated data. Unknown extra fields are tolerated, required fields must
// be present, and nullable fields accept explicit null.

func obj(required []string, props map[string]*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Required: required, Properties: props}
}

func array(items *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "array", Items: items}
}

// Each helper returns a fresh schema because jsonschema-go requires the
// schema graph to be a tree: the same *Schema pointer may not appear in
// more than one place.
func integer() *jsonschema.Schema  { return &jsonschema.Schema{Type: "integer"} }
func number() *jsonschema.Schema   { return &jsonschema.Schema{Type: "number"} }
func str() *jsonschema.Schema      { return &jsonschema.Schema{Type: "string"} }
func boolean() *jsonschema.Schema  { return &jsonschema.Schema{Type: "boolean"} }
func nullable() *jsonschema.Schema { return &jsonschema.Schema{Types: []string{"string", "null"}} }
func nullNum() *jsonschema.Schema  { return &jsonschema.Schema{Types: []string{"number", "null"}} }

// moviePageSchema covers search, recommendations, discover, trending and
// upcoming responses, which all share the paged movie list shape.
var moviePageSchema = mustResolve("movie_page", obj(
	[]string{"page", "results", "total_pages", "total_results"},
	map[string]*jsonschema.Schema{
		"page": integer(),
		"results": array(obj(
			[]string{"id", "title", "overview"},
			map[string]*jsonschema.Schema{
				"id":           integer(),
				"title":        str(),
				"release_date": str(),
				"overview":     str(),
				"poster_path":  nullable(),
			},
		)),
		"total_pages":   integer(),
		"total_results": integer(),
	},
))

var movieDetailsSchema = mustResolve("movie_details", obj(
	[]string{"id", "title", "overview"},
	map[string]*jsonschema.Schema{
		"id":           integer(),
		"title":        str(),
		"overview":     str(),
		"release_date": str(),
		"poster_path":  nullable(),
		"runtime":      nullNum(),
		"vote_average": number(),
		"genres": array(obj(
			[]string{"id", "name"},
			map[string]*jsonschema.Schema{"id": integer(), "name": str()},
		)),
		"credits": obj(nil, map[string]*jsonschema.Schema{
			"cast": array(obj(
				[]string{"name"},
				map[string]*jsonschema.Schema{"name": str(), "character": str()},
			)),
			"crew": array(obj(
				[]string{"name"},
				map[string]*jsonschema.Schema{"name": str(), "job": str()},
			)),
		}),
	},
))

var genreListSchema = mustResolve("genre_list", obj(
	[]string{"genres"},
	map[string]*jsonschema.Schema{
		"genres": array(obj(
			[]string{"id", "name"},
			map[string]*jsonschema.Schema{"id": integer(), "name": str()},
		)),
	},
))

var actorPageSchema = mustResolve("actor_page", obj(
	[]string{"page", "results", "total_pages", "total_results"},
	map[string]*jsonschema.Schema{
		"page": integer(),
		"results": array(obj(
			[]string{"id", "name"},
			map[string]*jsonschema.Schema{"id": integer(), "name": str()},
		)),
		"total_pages":   integer(),
		"total_results": integer(),
	},
))

var reviewPageSchema = mustResolve("review_page", obj(
	[]string{"id", "page", "results", "total_pages", "total_results"},
	map[string]*jsonschema.Schema{
		"id":   integer(),
		"page": integer(),
		"results": array(obj(
			[]string{"author", "content", "created_at", "id", "updated_at", "url"},
			map[string]*jsonschema.Schema{
				"author":     str(),
				"content":    str(),
				"created_at": str(),
				"id":         str(),
				"updated_at": str(),
				"url":        str(),
				"author_details": obj(
					[]string{"username"},
					map[string]*jsonschema.Schema{
						"name":        str(),
						"username":    str(),
						"avatar_path": nullable(),
						"rating":      nullNum(),
					},
				),
			},
		)),
		"total_pages":   integer(),
		"total_results": integer(),
	},
))

var videoListSchema = mustResolve("video_list", obj(
	[]string{"id", "results"},
	map[string]*jsonschema.Schema{
		"id": integer(),
		"results": array(obj(
			[]string{"iso_639_1", "iso_3166_1", "name", "key", "site", "size", "type", "official", "published_at", "id"},
			map[string]*jsonschema.Schema{
				"iso_639_1":    str(),
				"iso_3166_1":   str(),
				"name":         str(),
				"key":          str(),
				"site":         str(),
				"size":         integer(),
				"type":         str(),
				"official":     boolean(),
				"published_at": str(),
				"id":           str(),
			},
		)),
	},
))

// responseSchema pairs a resolved schema with its name for error reporting.
type responseSchema struct {
	name     string
	resolved *jsonschema.Resolved
}

func mustResolve(name string, s *jsonschema.Schema) *responseSchema {
	resolved, err := s.Resolve(nil)
	if err != nil {
		panic("tmdb: invalid " + name + " schema: " + err.Error())
	}
	return &responseSchema{name: name, resolved: resolved}
}

// validate checks a decoded JSON value against the schema. A failure reports
// the schema name plus the validator's path and expected type.
func (s *responseSchema) validate(value any) error {
	if err := s.resolved.Validate(value); err != nil {
		return &SchemaError{Schema: s.name, Err: err}
	}
	return nil
}
