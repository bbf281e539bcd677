package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/gompdf/leasedoc/internal/layout"
	"github.com/gompdf/leasedoc/internal/pagination"
)

var margins = pagination.Margins{Top: 20, Right: 20, Bottom: 20, Left: 20}

func paginate(t *testing.T, blocks []layout.Block) []*pagination.Page {
	t.Helper()
	pager := pagination.NewEngine()
	engine := layout.NewEngine()
	engine.SetOptions(layout.Options{Width: pager.ContentWidth()})

	boxes, err := engine.Layout(blocks)
	require.NoError(t, err)
	pages, err := pager.Paginate(boxes)
	require.NoError(t, err)
	return pages
}

func render(t *testing.T, pages []*pagination.Page, id string) *Document {
	t.Helper()
	r := NewRenderer()
	r.Compress = false
	doc, err := r.Render(pages, RenderOptions{
		Title:        "Test",
		DocumentID:   id,
		Margins:      margins,
		CreationDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return doc
}

func TestRenderChecklist(t *testing.T) {
	pages := paginate(t, []layout.Block{
		{Kind: layout.KindTitle, Text: "Move-In Inspection Checklist"},
		{Kind: layout.KindChecklistItem, Marker: "1.", Text: "Check smoke detectors"},
		{Kind: layout.KindChecklistItem, Marker: "2.", Text: "Test locks"},
		{Kind: layout.KindChecklistItem, Marker: "3.", Text: "Note damage"},
	})
	doc := render(t, pages, "doc-1")

	out := doc.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, 1, doc.PageCount())
	assert.Equal(t, "doc-1", doc.ID)

	s := string(out)
	first := strings.Index(s, "(1.) Tj")
	second := strings.Index(s, "(2.) Tj")
	third := strings.Index(s, "(3.) Tj")
	require.True(t, first >= 0 && second > first && third > second, "markers out of order")
	assert.Contains(t, s, "(Check smoke detectors) Tj")
	assert.Contains(t, s, "(Page 1 of 1) Tj")
	assert.Contains(t, s, "(Document ID: doc-1) Tj")
	// One stroked square per checklist item.
	assert.Equal(t, 3, strings.Count(s, " re S"))
}

func TestRenderMultiplePages(t *testing.T) {
	long := strings.Repeat("The tenant agrees to maintain the premises in good repair. ", 120)
	pages := paginate(t, []layout.Block{
		{Kind: layout.KindHeader, Text: "RESIDENTIAL LEASE AGREEMENT"},
		{Kind: layout.KindParagraph, Text: long},
		{Kind: layout.KindSignature, Label: "Tenant Signature", Text: "J. Doe", KeepTogether: true},
	})
	require.GreaterOrEqual(t, len(pages), 2)

	doc := render(t, pages, "")
	assert.Equal(t, len(pages), doc.PageCount())
	s := string(doc.Bytes())
	assert.Contains(t, s, "(Page 2 of ")
	assert.NotContains(t, s, "Document ID:")
}

func TestRenderNoPages(t *testing.T) {
	_, err := NewRenderer().Render(nil, RenderOptions{})
	assert.ErrorIs(t, err, ErrNoPages)
}

func TestDocumentSaveAndWriteTo(t *testing.T) {
	doc := render(t, paginate(t, []layout.Block{{Kind: layout.KindParagraph, Text: "hello"}}), "x")

	path := filepath.Join(t.TempDir(), "nested", "out.pdf")
	require.NoError(t, doc.Save(path))
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Bytes(), saved)

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(saved)), n)
}

func TestRenderTranslatesText(t *testing.T) {
	doc := render(t, paginate(t, []layout.Block{{Kind: layout.KindParagraph, Text: "Café"}}), "")
	// cp1252 encodes é as a single byte.
	assert.Contains(t, string(doc.Bytes()), "(Caf\xe9) Tj")
}

func TestConcurrentRenders(t *testing.T) {
	defer goleak.VerifyNone(t)

	var wg sync.WaitGroup
	docs := make([]*Document, 8)
	for i := range docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			engine := layout.NewEngine()
			boxes, err := engine.Layout([]layout.Block{{Kind: layout.KindParagraph, Text: "Concurrent render"}})
			if err != nil {
				return
			}
			pages, err := pagination.NewEngine().Paginate(boxes)
			if err != nil {
				return
			}
			r := NewRenderer()
			r.Compress = false
			docs[i], _ = r.Render(pages, RenderOptions{Margins: margins})
		}(i)
	}
	wg.Wait()

	for _, doc := range docs {
		require.NotNil(t, doc)
		assert.Contains(t, string(doc.Bytes()), "(Concurrent render) Tj")
	}
}
