package facades_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagineapp/imagine-server/internal/facades"
)

type fakeVirusTotal struct {
	t          *testing.T
	analysisID string
	// statuses are served in order per poll; the last one repeats.
	statuses   []analysisReply
	uploads    atomic.Int32
	polls      atomic.Int32
	uploadCode int
	pollCode   int
	gotAPIKey  string
	gotContent []byte
}

type analysisReply struct {
	status     string
	suspicious int
	malicious  int
}

func (f *fakeVirusTotal) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/files", func(w http.ResponseWriter, r *http.Request) {
		f.uploads.Add(1)
		f.gotAPIKey = r.Header.Get("x-apikey")

		require.NoError(f.t, r.ParseMultipartForm(32<<20))
		file, header, err := r.FormFile("file")
		require.NoError(f.t, err)
		defer file.Close()
		assert.Equal(f.t, "file.zip", header.Filename)
		f.gotContent, err = io.ReadAll(file)
		require.NoError(f.t, err)

		if f.uploadCode != 0 {
			w.WriteHeader(f.uploadCode)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": f.analysisID},
		})
	})
	mux.HandleFunc("/analyses/", func(w http.ResponseWriter, r *http.Request) {
		n := int(f.polls.Add(1))
		assert.Equal(f.t, "/analyses/"+f.analysisID, r.URL.Path)

		if f.pollCode != 0 {
			w.WriteHeader(f.pollCode)
			return
		}
		reply := f.statuses[len(f.statuses)-1]
		if n-1 < len(f.statuses) {
			reply = f.statuses[n-1]
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"attributes": map[string]any{
					"status": reply.status,
					"stats": map[string]any{
						"suspicious": reply.suspicious,
						"malicious":  reply.malicious,
					},
				},
			},
		})
	})
	return mux
}

func newClient(srv *httptest.Server) *facades.VirusTotalClient {
	return facades.New("test-key",
		facades.WithBaseURL(srv.URL),
		facades.WithHTTPClient(srv.Client()),
		facades.WithPollInterval(time.Millisecond),
	)
}

func TestVirusTotalClient_Check_Passes(t *testing.T) {
	fake := &fakeVirusTotal{
		t:          t,
		analysisID: "analysis-1",
		statuses:   []analysisReply{{status: "completed"}},
	}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	passed, pendingID, err := newClient(srv).Check(context.Background(), []byte("clean bytes"))
	assert.NoError(t, err)
	assert.True(t, passed)
	assert.Empty(t, pendingID)
	assert.Equal(t, "test-key", fake.gotAPIKey)

	// The uploaded payload is the content wrapped in a zip archive.
	zr, err := zip.NewReader(bytes.NewReader(fake.gotContent), int64(len(fake.gotContent)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	unzipped, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("clean bytes"), unzipped)
}

func TestVirusTotalClient_Check_FlaggedContentFails(t *testing.T) {
	tests := []struct {
		name  string
		reply analysisReply
	}{
		{name: "malicious detection", reply: analysisReply{status: "completed", malicious: 3}},
		{name: "suspicious detection", reply: analysisReply{status: "completed", suspicious: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeVirusTotal{t: t, analysisID: "analysis-2", statuses: []analysisReply{tt.reply}}
			srv := httptest.NewServer(fake.handler())
			defer srv.Close()

			passed, pendingID, err := newClient(srv).Check(context.Background(), []byte("bad bytes"))
			assert.NoError(t, err)
			assert.False(t, passed)
			assert.Empty(t, pendingID)
		})
	}
}

func TestVirusTotalClient_Check_QueuedConsumesAttempts(t *testing.T) {
	fake := &fakeVirusTotal{
		t:          t,
		analysisID: "analysis-3",
		statuses: []analysisReply{
			{status: "queued"},
			{status: "queued"},
			{status: "completed"},
		},
	}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	passed, pendingID, err := newClient(srv).Check(context.Background(), []byte("slowish"))
	assert.NoError(t, err)
	assert.True(t, passed)
	assert.Empty(t, pendingID)
	assert.Equal(t, int32(3), fake.polls.Load())
}

func TestVirusTotalClient_Check_BudgetExhaustedReturnsPendingID(t *testing.T) {
	fake := &fakeVirusTotal{
		t:          t,
		analysisID: "analysis-4",
		statuses:   []analysisReply{{status: "queued"}},
	}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	passed, pendingID, err := newClient(srv).Check(context.Background(), []byte("very slow"))
	assert.NoError(t, err)
	assert.False(t, passed)
	assert.Equal(t, "analysis-4", pendingID)
	assert.Equal(t, int32(5), fake.polls.Load())
}

func TestVirusTotalClient_Check_UploadRejected(t *testing.T) {
	fake := &fakeVirusTotal{t: t, analysisID: "unused", uploadCode: http.StatusUnauthorized}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	_, _, err := newClient(srv).Check(context.Background(), []byte("bytes"))
	assert.EqualError(t, err, fmt.Sprintf("upload rejected with status %d", http.StatusUnauthorized))
	assert.Equal(t, int32(0), fake.polls.Load())
}

func TestVirusTotalClient_Check_PollRejected(t *testing.T) {
	fake := &fakeVirusTotal{t: t, analysisID: "analysis-5", pollCode: http.StatusTooManyRequests}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	_, _, err := newClient(srv).Check(context.Background(), []byte("bytes"))
	assert.EqualError(t, err, fmt.Sprintf("analysis fetch rejected with status %d", http.StatusTooManyRequests))
}

func TestVirusTotalClient_Check_ContextCancelled(t *testing.T) {
	fake := &fakeVirusTotal{
		t:          t,
		analysisID: "analysis-6",
		statuses:   []analysisReply{{status: "queued"}},
	}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := facades.New("test-key",
		facades.WithBaseURL(srv.URL),
		facades.WithHTTPClient(srv.Client()),
		facades.WithPollInterval(time.Minute),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := client.Check(ctx, []byte("bytes"))
	assert.ErrorIs(t, err, context.Canceled)
}
