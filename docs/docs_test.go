package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	for _, path := range []string{"/", "/post/{slug}", "/dashboard", "/edit/{id}", "/delete/{id}", "/logout"} {
		assert.Contains(t, doc.Paths, path)
	}
}
