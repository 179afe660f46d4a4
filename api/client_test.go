package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examfit/models"
	"examfit/session"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func storeWithToken(t *testing.T, token string) *session.FileStore {
	t.Helper()
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	if token != "" {
		require.NoError(t, store.Save(token, nil))
	}
	return store
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, storeWithToken(t, "abc123"), quietLogger())
	_, err := client.ListBoards(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientSkipsAuthHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, storeWithToken(t, ""), quietLogger())
	_, err := client.ListBoards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientClearsSessionOn401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := storeWithToken(t, "stale-token")
	client := New(server.URL, store, quietLogger())

	_, err := client.ListExams(context.Background())
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Empty(t, store.Token(), "401 must clear the stored token")

	// Every endpoint behaves the same way.
	err = client.DeleteBoard(context.Background(), "b1")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestClientDecodesBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"name is required"}`))
	}))
	defer server.Close()

	client := New(server.URL, storeWithToken(t, "tok"), quietLogger())
	err := client.CreateBoard(context.Background(), models.Board{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Message, "name is required")
}

func TestListEnvelopeNormalization(t *testing.T) {
	payloads := map[string]string{
		"bare array":  `[{"_id":"b1","name":"UPSC"}]`,
		"wrapped":     `{"boards":[{"_id":"b1","name":"UPSC"}]}`,
		"null field":  `{"boards":null}`,
		"missing key": `{"somethingElse":1}`,
	}
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(payload))
			}))
			defer server.Close()

			client := New(server.URL, storeWithToken(t, "tok"), quietLogger())
			boards, err := client.ListBoards(context.Background())
			require.NoError(t, err)
			if name == "bare array" || name == "wrapped" {
				require.Len(t, boards, 1)
				assert.Equal(t, "UPSC", boards[0].Name)
			} else {
				assert.Empty(t, boards)
			}
		})
	}
}

func TestDocEnvelopeNormalization(t *testing.T) {
	for name, payload := range map[string]string{
		"bare":    `{"_id":"s1","name":"History","sectionPriorities":{"Paper 1":1}}`,
		"wrapped": `{"subject":{"_id":"s1","name":"History","sectionPriorities":{"Paper 1":1}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(payload))
			}))
			defer server.Close()

			client := New(server.URL, storeWithToken(t, "tok"), quietLogger())
			subject, err := client.GetSubject(context.Background(), "s1")
			require.NoError(t, err)
			assert.Equal(t, "History", subject.Name)
			assert.Equal(t, 1, subject.SectionPriorities["Paper 1"])
		})
	}
}

func TestRefDecodesPopulatedParent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"e1","title":"CSE","board":{"_id":"b1","name":"UPSC"}},` +
			`{"_id":"e2","title":"NDA","board":"b1"}]`))
	}))
	defer server.Close()

	client := New(server.URL, storeWithToken(t, "tok"), quietLogger())
	exams, err := client.ListExams(context.Background())
	require.NoError(t, err)
	require.Len(t, exams, 2)
	assert.Equal(t, "b1", exams[0].Board.String())
	assert.Equal(t, "b1", exams[1].Board.String())
}

func TestMalformedListPayloadIsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"boards":"not-a-list"}`))
	}))
	defer server.Close()

	client := New(server.URL, storeWithToken(t, "tok"), quietLogger())
	_, err := client.ListBoards(context.Background())
	assert.Error(t, err)
}
