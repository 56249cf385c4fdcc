package serializers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	return verr.Fields
}

func applyProject(t *testing.T, body string, p *domain.Project, partial bool) error {
	t.Helper()
	req, err := DecodeProject([]byte(body))
	require.NoError(t, err)
	return req.Apply(p, partial)
}

func TestDecodeProject_MalformedBody(t *testing.T) {
	for _, body := range []string{``, `{`, `[]`, `"title"`, `null`} {
		_, err := DecodeProject([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedBody, "body %q", body)
	}
}

func TestProjectApply_Create(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		var p domain.Project
		err := applyProject(t, `{"title":"Demo","description":"A sample project","link":"https://x.io"}`, &p, false)
		require.NoError(t, err)
		assert.Equal(t, "Demo", p.Title)
		assert.Equal(t, "A sample project", p.Description)
		require.NotNil(t, p.Link)
		assert.Equal(t, "https://x.io", *p.Link)
	})

	t.Run("read-only fields are ignored", func(t *testing.T) {
		var p domain.Project
		err := applyProject(t, `{"id":99,"created_at":"2001-01-01T00:00:00Z","title":"T","description":"D"}`, &p, false)
		require.NoError(t, err)
		assert.Zero(t, p.ID)
		assert.True(t, p.CreatedAt.IsZero())
		assert.Nil(t, p.Link)
	})

	t.Run("missing required fields", func(t *testing.T) {
		var p domain.Project
		fields := fieldErrors(t, applyProject(t, `{}`, &p, false))
		assert.Equal(t, []string{MsgRequired}, fields["title"])
		assert.Equal(t, []string{MsgRequired}, fields["description"])
		assert.NotContains(t, fields, "link")
	})

	t.Run("null, blank and wrong types", func(t *testing.T) {
		var p domain.Project
		fields := fieldErrors(t, applyProject(t, `{"title":null,"description":"","link":42}`, &p, false))
		assert.Equal(t, []string{MsgNull}, fields["title"])
		assert.Equal(t, []string{MsgBlank}, fields["description"])
		assert.Equal(t, []string{MsgNotString}, fields["link"])
	})

	t.Run("too long title and bad url", func(t *testing.T) {
		var p domain.Project
		body := `{"title":"` + strings.Repeat("a", 201) + `","description":"D","link":"javascript:alert(1)"}`
		fields := fieldErrors(t, applyProject(t, body, &p, false))
		assert.Equal(t, []string{"Ensure this field has no more than 200 characters."}, fields["title"])
		assert.Equal(t, []string{MsgInvalidURL}, fields["link"])
	})

	t.Run("whitespace-only text is blank", func(t *testing.T) {
		var p domain.Project
		fields := fieldErrors(t, applyProject(t, `{"title":"   ","description":"\t\n "}`, &p, false))
		assert.Equal(t, []string{MsgBlank}, fields["title"])
		assert.Equal(t, []string{MsgBlank}, fields["description"])
	})

	t.Run("text is trimmed", func(t *testing.T) {
		var p domain.Project
		require.NoError(t, applyProject(t, `{"title":"  Demo  ","description":"  A sample project "}`, &p, false))
		assert.Equal(t, "Demo", p.Title)
		assert.Equal(t, "A sample project", p.Description)
	})

	t.Run("link schemes", func(t *testing.T) {
		for _, link := range []string{"http://x.io", "https://x.io/a?b=c", "ftp://files.example.com/x", "FTPS://files.example.com"} {
			var p domain.Project
			require.NoError(t, applyProject(t, `{"title":"T","description":"D","link":"`+link+`"}`, &p, false), link)
			require.NotNil(t, p.Link)
			assert.Equal(t, link, *p.Link)
		}
		for _, link := range []string{"mailto:a@b.c", "file:///etc/passwd", "http://", "//x.io", "x.io", "http://exa mple.com"} {
			var p domain.Project
			fields := fieldErrors(t, applyProject(t, `{"title":"T","description":"D","link":"`+link+`"}`, &p, false))
			assert.Equal(t, []string{MsgInvalidURL}, fields["link"], link)
		}
	})

	t.Run("empty link is stored as null", func(t *testing.T) {
		var p domain.Project
		require.NoError(t, applyProject(t, `{"title":"T","description":"D","link":""}`, &p, false))
		assert.Nil(t, p.Link)
	})
}

func TestProjectApply_Update(t *testing.T) {
	link := "https://old.example"
	existing := func() *domain.Project {
		return &domain.Project{ID: 7, Title: "Old", Description: "Old description", Link: &link}
	}

	t.Run("partial keeps absent fields", func(t *testing.T) {
		p := existing()
		require.NoError(t, applyProject(t, `{"title":"New"}`, p, true))
		assert.Equal(t, "New", p.Title)
		assert.Equal(t, "Old description", p.Description)
		require.NotNil(t, p.Link)
		assert.Equal(t, link, *p.Link)
	})

	t.Run("partial null link clears it", func(t *testing.T) {
		p := existing()
		require.NoError(t, applyProject(t, `{"link":null}`, p, true))
		assert.Nil(t, p.Link)
	})

	t.Run("partial cannot null a required field", func(t *testing.T) {
		p := existing()
		fields := fieldErrors(t, applyProject(t, `{"description":null}`, p, true))
		assert.Equal(t, []string{MsgNull}, fields["description"])
	})

	t.Run("full update requires every required field", func(t *testing.T) {
		p := existing()
		fields := fieldErrors(t, applyProject(t, `{"title":"New"}`, p, false))
		assert.Equal(t, []string{MsgRequired}, fields["description"])
		assert.NotContains(t, fields, "title")
	})
}
