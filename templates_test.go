package unitfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesCatalog(t *testing.T) {
	templates := Templates()
	require.NotEmpty(t, templates)

	seen := make(map[string]bool)
	for _, tpl := range templates {
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Description)
		assert.NotEqual(t, KindUnknown, tpl.Kind)
		assert.False(t, seen[tpl.Name], "duplicate template name %s", tpl.Name)
		seen[tpl.Name] = true
	}
}

func TestTemplatesValidate(t *testing.T) {
	for _, tpl := range Templates() {
		t.Run(tpl.Name, func(t *testing.T) {
			r := Validate(tpl.Config(), tpl.Kind)
			assert.Empty(t, r.Errors, "template must not carry blocking errors")
		})
	}
}

func TestTemplateConfigIsACopy(t *testing.T) {
	tpl, err := LookupTemplate("simple-service")
	require.NoError(t, err)

	first := tpl.Config()
	first.Set(SectionUnit, "Description", "mutated")

	second := tpl.Config()
	assert.NotEqual(t, "mutated", second.Get(SectionUnit, "Description"))
}

func TestLookupTemplate(t *testing.T) {
	tpl, err := LookupTemplate("daily-timer")
	require.NoError(t, err)
	assert.Equal(t, KindTimer, tpl.Kind)
	assert.Equal(t, "daily", tpl.Config().Get(SectionTimer, "OnCalendar"))

	_, err = LookupTemplate("no-such-template")
	require.ErrorIs(t, err, ErrNoTemplate)
}
