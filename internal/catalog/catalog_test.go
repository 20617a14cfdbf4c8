package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"portfolio/internal/carousel"
)

func TestDefault(t *testing.T) {
	items := Default()

	require.Len(t, items, 6)
	require.NoError(t, Validate(items))
	assert.Equal(t, "portuguese-verbs", items[0].ID)
	assert.Equal(t, carousel.KindCTA, items[5].Kind)
	assert.Equal(t, "Have a project in mind?", items[5].Label())

	items[0].Title = "changed"
	assert.Equal(t, "Portuguese Verb Conjugator", Default()[0].Title, "Default returns a fresh slice")
}

func TestParse(t *testing.T) {
	data := []byte(`
items:
  - id: alpha
    title: Alpha
    tech_stack: [Go, Bubble Tea]
    project_url: https://example.com/alpha
  - id: contact
    type: cta
    cta_title: Talk?
    cta_text: Email me
    cta_link: mailto:me@example.com
`)
	items, err := Parse(data)
	require.NoError(t, err)

	want := []carousel.Item{
		{ID: "alpha", Kind: carousel.KindProject, Title: "Alpha", TechStack: []string{"Go", "Bubble Tea"}, ProjectURL: "https://example.com/alpha"},
		carousel.CallToAction("contact", "Talk?", "Email me", "mailto:me@example.com"),
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty document", "", ErrEmpty},
		{"empty list", "items: []", ErrEmpty},
		{"duplicate id", "items:\n  - {id: a, title: A}\n  - {id: a, title: B}\n", ErrDuplicateID},
		{"missing id", "items:\n  - {title: A}\n", ErrInvalidItem},
		{"project without title", "items:\n  - {id: a}\n", ErrInvalidItem},
		{"cta without link", "items:\n  - {id: c, type: cta, cta_title: T, cta_text: X}\n", ErrInvalidItem},
		{"unknown kind", "items:\n  - {id: a, type: banner, title: A}\n", ErrInvalidItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse([]byte("items:\n  - {id: a, title: A, colour: red}\n"))
		assert.ErrorContains(t, err, "failed to parse items")
	})
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	items := []carousel.Item{
		{ID: "a", Kind: carousel.KindProject},
		{ID: "a", Kind: carousel.KindProject, Title: "Dup"},
	}
	err := Validate(items)
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "items.yaml")
	require.NoError(t, Write(path, Default()))

	items, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), items); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	items, err := Resolve("")
	require.NoError(t, err)
	assert.Len(t, items, 6)

	_, err = Resolve(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read items")
}

func TestWatch_ReloadsValidFilesOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - {id: a, title: A}\n"), 0644))

	var mu sync.Mutex
	var got [][]carousel.Item
	fw, err := Watch(path, zaptest.NewLogger(t), func(items []carousel.Item) {
		mu.Lock()
		got = append(got, items)
		mu.Unlock()
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fw.Start(ctx))
	defer fw.Stop()

	require.NoError(t, os.WriteFile(path, []byte("items:\n  - {id: a}\n"), 0644))
	time.Sleep(600 * time.Millisecond)
	mu.Lock()
	assert.Empty(t, got, "invalid file is not delivered")
	mu.Unlock()

	require.NoError(t, os.WriteFile(path, []byte("items:\n  - {id: a, title: A}\n  - {id: b, title: B}\n"), 0644))
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && len(got[0]) == 2
	}, 3*time.Second, 25*time.Millisecond)
}
