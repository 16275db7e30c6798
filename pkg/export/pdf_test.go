package export

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mightyops-be/pkg/reporting"
)

func evaluationRecords(n int) []reporting.Record {
	at := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	out := make([]reporting.Record, n)
	for i := range out {
		out[i] = reporting.Record{
			ID:          i + 1,
			Location:    fmt.Sprintf("Site #%d", i%4+1),
			SubmittedBy: "riley",
			SubmittedAt: at.Add(time.Duration(i) * time.Hour),
			Values: map[string]any{
				"q1":               "Yes",
				"q18":              "Good",
				"additional_notes": "Lobby was clean, vacuum stations needed attention near the exit lane.",
			},
		}
	}
	return out
}

func TestDocumentExport(t *testing.T) {
	schema, ok := reporting.SchemaFor(reporting.FormEvaluations)
	require.True(t, ok)

	opts := Options{
		Kind:          KindDocument,
		GeneratedAt:   time.Date(2026, 5, 2, 16, 0, 0, 0, time.UTC),
		FilterSummary: "Sites: All | Date Range: All dates",
		ImageURL: func(form reporting.FormType, id int) string {
			return fmt.Sprintf("https://example.test/records/%s/%d/image", form, id)
		},
	}

	file, err := Export(schema, evaluationRecords(3), opts)
	require.NoError(t, err)

	assert.Equal(t, "Site_Evaluation_Report_2026-05-02.pdf", file.Name)
	assert.Equal(t, pdfMIME, file.MIME)
	require.Greater(t, len(file.Data), 4)
	assert.Equal(t, "%PDF", string(file.Data[:4]))
}

func TestDocumentExportPaginates(t *testing.T) {
	schema, ok := reporting.SchemaFor(reporting.FormEvaluations)
	require.True(t, ok)
	opts := Options{Kind: KindDocument, GeneratedAt: time.Now()}

	small, err := Export(schema, evaluationRecords(2), opts)
	require.NoError(t, err)
	large, err := Export(schema, evaluationRecords(60), opts)
	require.NoError(t, err)

	// Sixty detail blocks cannot fit one page; the document must grow.
	assert.Greater(t, len(large.Data), len(small.Data))
}

func TestTabularDocumentExport(t *testing.T) {
	schema, ok := reporting.SchemaFor(reporting.FormViolationNotes)
	require.True(t, ok)

	opts := Options{
		Kind:        KindDocument,
		GeneratedAt: time.Date(2026, 5, 2, 16, 0, 0, 0, time.UTC),
	}

	file, err := Export(schema, noteRecords(), opts)
	require.NoError(t, err)
	assert.Equal(t, "Mighty_Note_Report_2026-05-02.pdf", file.Name)
	assert.Equal(t, "%PDF", string(file.Data[:4]))
}

// pdfText inflates every content stream so assertions can look at the
// text operators the viewer will actually render.
func pdfText(t *testing.T, data []byte) []byte {
	t.Helper()
	var out []byte
	rest := data
	for {
		i := bytes.Index(rest, []byte("stream\n"))
		if i < 0 {
			break
		}
		rest = rest[i+len("stream\n"):]
		j := bytes.Index(rest, []byte("endstream"))
		if j < 0 {
			break
		}
		chunk := rest[:j]
		if zr, err := zlib.NewReader(bytes.NewReader(chunk)); err == nil {
			if dec, err := io.ReadAll(zr); err == nil {
				out = append(out, dec...)
			}
			zr.Close()
		} else {
			out = append(out, chunk...)
		}
		rest = rest[j:]
	}
	return out
}

func TestDocumentExportEncodesNonASCIIText(t *testing.T) {
	schema, ok := reporting.SchemaFor(reporting.FormCapitalRequests)
	require.True(t, ok)

	// Section titles carry an em-dash; field text adds accented letters.
	records := []reporting.Record{{
		ID:          3,
		SubmittedBy: "renée",
		SubmittedAt: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
		Values: map[string]any{
			"request_types": []string{"Equipment"},
			"description":   "Replace the café espresso machine",
		},
	}}

	file, err := Export(schema, records, Options{Kind: KindDocument, GeneratedAt: time.Now()})
	require.NoError(t, err)

	text := pdfText(t, file.Data)
	require.NotEmpty(t, text)

	// Helvetica is a cp1252 font: the em-dash must land as byte 0x97,
	// never as its raw UTF-8 sequence.
	assert.True(t, bytes.Contains(text, []byte{0x97}))
	assert.False(t, bytes.Contains(text, []byte("\xe2\x80\x94")))
	assert.True(t, bytes.Contains(text, []byte{0xe9}), "expected cp1252 e-acute")
}

func TestDocumentExportHandlesMissingValues(t *testing.T) {
	schema, ok := reporting.SchemaFor(reporting.FormCapitalRequests)
	require.True(t, ok)

	records := []reporting.Record{{
		ID:          7,
		SubmittedAt: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
		Values: map[string]any{
			"request_types": []string{"Equipment", "Facility"},
		},
	}}

	file, err := Export(schema, records, Options{Kind: KindDocument, GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(file.Data[:4]))
}
