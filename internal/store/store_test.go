package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/types"
)

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "://not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect")
}

func TestDocumentPayloadRoundTrip(t *testing.T) {
	parent := 2
	doc := &types.Document{
		Version:       3,
		ParentVersion: &parent,
		Sections: []types.Section{
			{Name: "experience", Entries: []types.Entry{
				{ID: "e1", Text: "Reduced p99 latency by 45%", Section: "experience"},
				{ID: "e2", Text: "Led migration to Kubernetes", Section: "experience"},
			}},
		},
	}

	payload, err := encodeDocument(doc)
	require.NoError(t, err)

	decoded, err := decodeDocument(payload)
	require.NoError(t, err)

	// Version lineage and entry identity survive the trip to JSONB and back.
	assert.Equal(t, doc, decoded)
	assert.Equal(t, doc.EntryIDs(), decoded.EntryIDs())
}

func TestDecodeDocument_CorruptPayload(t *testing.T) {
	_, err := decodeDocument([]byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}
