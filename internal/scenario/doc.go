// Package scenario describes and runs a color-pour session: which
// containers exist, what they are seeded with, and which pours are
// attempted in order.
//
// Scenarios come either from Default (the built-in three-container run)
// or from a file. JSON files may contain comments (JSONC); they are
// stripped with github.com/tidwall/jsonc before decoding with
// encoding/json. YAML files are decoded with gopkg.in/yaml.v3.
package scenario
