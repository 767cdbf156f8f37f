package core

import (
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
)

func TestFieldError(t *testing.T) {
	assert.Equal(t, "Name is required", FieldError(map[string]string{"name": "Name is required"}, "name"))
	assert.Equal(t, "Invalid email", FieldError(apperrors.FieldErrors{"email": "Invalid email"}, "email"))
	assert.Empty(t, FieldError(nil, "name"))
}

func TestDict(t *testing.T) {
	m, err := Dict("Name", "sku", "Index", 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Name": "sku", "Index": 2}, m)

	_, err = Dict("odd")
	require.Error(t, err)
	_, err = Dict(1, 2)
	require.Error(t, err)
}

func TestRenderSectionUsesContentTemplate(t *testing.T) {
	var tmpl *template.Template
	funcs := Funcs(Deps{
		Template:           &tmpl,
		ContentTemplateFor: func(page string) string { return page + "-content" },
	})
	tmpl = template.Must(template.New("root").Funcs(funcs).Parse(
		`{{define "suppliers-content"}}<p>{{.Name}}</p>{{end}}{{define "page"}}{{renderSection "suppliers" .}}{{end}}`,
	))

	var b strings.Builder
	require.NoError(t, tmpl.ExecuteTemplate(&b, "page", map[string]string{"Name": "<Acme>"}))
	assert.Equal(t, "<p>&lt;Acme&gt;</p>", b.String())
}

func TestTimeHelpers(t *testing.T) {
	assert.Empty(t, friendlyTime(nil))
	var nilTime *time.Time
	assert.Empty(t, timeTag(nilTime))

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Contains(t, string(timeTag(&ts)), `datetime="2024-01-02T03:04:05Z"`)
}

func TestTriState(t *testing.T) {
	yes, no := true, false
	assert.Empty(t, TriState(nil))
	assert.Equal(t, "true", TriState(&yes))
	assert.Equal(t, "false", TriState(&no))
}
