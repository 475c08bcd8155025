package level

import (
	"github.com/invopop/jsonschema"

	"github.com/phanxgames/platformer"
)

// Schema returns the JSON schema of the level format, for editor tooling.
// The TOML files map one-to-one onto it.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(platformer.Map))
	schema.Title = "Platformer level"
	schema.Description = "Map size, player spawn and named objects of one level. Positions are top-left corners in level units, y-up."
	return schema
}
