package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/flashpapers/internal/srs"
)

const atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/1706.03762v5</id>
    <published>2017-06-12T17:57:34Z</published>
    <title>Attention Is All You Need</title>
    <summary>  The dominant sequence transduction models are based on complex
  recurrent or convolutional neural networks.
</summary>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <link href="http://arxiv.org/abs/1706.03762v5" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/1706.03762v5" rel="related" type="application/pdf"/>
  </entry>
</feed>`

const emptyFeedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/api/errors</id>
    <title></title>
  </entry>
</feed>`

func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{id: "1706.03762", wantErr: false},
		{id: "1706.03762v5", wantErr: false},
		{id: "2301.12345", wantErr: false},
		{id: "cs.CL/9901001", wantErr: false},
		{id: "hep-th/9901001", wantErr: false},
		{id: "not-an-id", wantErr: true},
		{id: "1706", wantErr: true},
		{id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1706.03762", r.URL.Query().Get("id_list"))
		w.Header().Set("Content-Type", "application/atom+xml")
		_, _ = w.Write([]byte(atomFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 0)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	got, err := client.Fetch(context.Background(), "1706.03762", srs.DefaultParameters, now)
	require.NoError(t, err)
	assert.Equal(t, "Attention Is All You Need", got.PaperTitle)
	assert.Equal(t, "Ashish Vaswani, Noam Shazeer", got.Authors)
	assert.Equal(t, "http://arxiv.org/abs/1706.03762v5", got.Link)
	assert.Contains(t, got.BackgroundOfTheStudy, "sequence transduction models")
	assert.NotContains(t, got.BackgroundOfTheStudy, "\n")
	assert.Contains(t, got.Notes, "http://arxiv.org/pdf/1706.03762v5")
	assert.Equal(t, 0, got.ReviewCount)
	assert.Equal(t, srs.DefaultParameters.InitialEaseFactor, got.EaseFactor)
}

func TestClient_Fetch_InvalidID(t *testing.T) {
	client := NewClient("http://example.invalid", time.Second, 0)
	_, err := client.Fetch(context.Background(), "bogus id", srs.DefaultParameters, time.Now())
	assert.ErrorContains(t, err, "invalid arXiv identifier")
}

func TestClient_Fetch_UnknownID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(emptyFeedFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 3)
	_, err := client.Fetch(context.Background(), "1706.99999", srs.DefaultParameters, time.Now())
	assert.ErrorContains(t, err, "no arXiv entry found")
}

func TestClient_Fetch_RetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(atomFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 3)
	got, err := client.Fetch(context.Background(), "1706.03762", srs.DefaultParameters, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, "Attention Is All You Need", got.PaperTitle)
}

func TestClient_Fetch_DoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 3)
	_, err := client.Fetch(context.Background(), "1706.03762", srs.DefaultParameters, time.Now())
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
