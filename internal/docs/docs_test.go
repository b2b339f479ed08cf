package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocs_RenderValidJSON(t *testing.T) {
	for _, name := range []string{"products", "orders"} {
		doc, err := swag.ReadDoc(name)
		require.NoError(t, err, name)

		var parsed struct {
			Info  map[string]any `json:"info"`
			Paths map[string]any `json:"paths"`
		}
		require.NoError(t, json.Unmarshal([]byte(doc), &parsed), name)
		assert.NotEmpty(t, parsed.Paths, name)
		assert.Contains(t, parsed.Info["title"], name[:len(name)-1], name)
	}
}
