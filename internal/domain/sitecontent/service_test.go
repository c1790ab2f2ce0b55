package sitecontent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/database/dbtest"
	"academy/internal/pkg/apperr"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db := dbtest.Open(t, &Document{})
	return NewService(NewRepository(db), nil)
}

func TestContent_DefaultsBeforeFirstSave(t *testing.T) {
	svc := setupService(t)

	got, err := svc.Content(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, got.Hero.Title)
	assert.NotEmpty(t, got.Hero.Subtitle)
	assert.NotEmpty(t, got.Hero.Description)
	assert.NotEmpty(t, got.About.Title)
	assert.NotNil(t, got.Features)

	doc, err := svc.Document(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.ID)
}

func TestReplace_StoresSingleDocument(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	content := Defaults()
	content.Hero.Title = "Stage d'été"
	content.Features = []Feature{{Title: "Self-défense", Icon: "shield"}}
	first, err := svc.Replace(ctx, "admin-1", content)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	content.Contact.Email = "contact@academy.example"
	second, err := svc.Replace(ctx, "admin-2", content)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin-2", doc.UpdatedBy)
	assert.Equal(t, "Stage d'été", doc.Content.Hero.Title)
	assert.Equal(t, "contact@academy.example", doc.Content.Contact.Email)
	require.Len(t, doc.Content.Features, 1)
	assert.Equal(t, "shield", doc.Content.Features[0].Icon)
}

func TestReplace_RejectsInvalidFields(t *testing.T) {
	svc := setupService(t)

	content := Defaults()
	content.Contact.Email = "not-an-email"
	content.SocialLinks.Instagram = "instagram"
	content.Features = []Feature{{Title: ""}}
	_, err := svc.Replace(context.Background(), "admin-1", content)
	require.ErrorIs(t, err, ErrInvalidContent)

	e, ok := apperr.As(err)
	require.True(t, ok)
	details, ok := e.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "email", details["email"])
	assert.Equal(t, "url", details["instagram"])
	assert.Equal(t, "required", details["title"])
}

func TestUpdateSection_KeepsAbsentFields(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.UpdateSection(ctx, "admin-1", SectionFooter, json.RawMessage(`{"tagline":"Toujours prêts","copyright":"© 2026"}`))
	require.NoError(t, err)

	doc, err := svc.UpdateSection(ctx, "admin-1", SectionFooter, json.RawMessage(`{"tagline":"Nouveau slogan"}`))
	require.NoError(t, err)
	assert.Equal(t, "Nouveau slogan", doc.Content.Footer.Tagline)
	assert.Equal(t, "© 2026", doc.Content.Footer.Copyright)
	assert.Equal(t, Defaults().Hero.Title, doc.Content.Hero.Title)
}

func TestUpdateSection_ReplacesFeatureList(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.UpdateSection(ctx, "admin-1", SectionFeatures, json.RawMessage(`[{"title":"A","icon":"star"},{"title":"B"}]`))
	require.NoError(t, err)
	doc, err := svc.UpdateSection(ctx, "admin-1", SectionFeatures, json.RawMessage(`[{"title":"C"}]`))
	require.NoError(t, err)
	require.Len(t, doc.Content.Features, 1)
	assert.Equal(t, "C", doc.Content.Features[0].Title)
	assert.Empty(t, doc.Content.Features[0].Icon)
}

func TestUpdateSection_Errors(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.UpdateSection(ctx, "admin-1", Section("pricing"), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = svc.UpdateSection(ctx, "admin-1", SectionContact, json.RawMessage(`{"email":"bad"}`))
	assert.ErrorIs(t, err, ErrInvalidContent)

	_, err = svc.UpdateSection(ctx, "admin-1", SectionContact, json.RawMessage(`{"fax":"01 02"}`))
	assert.ErrorIs(t, err, ErrInvalidContent)

	_, err = svc.UpdateSection(ctx, "admin-1", SectionHero, json.RawMessage(`not json`))
	assert.ErrorIs(t, err, ErrInvalidContent)

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.ID)
}
