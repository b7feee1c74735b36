package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trending-ingest/infrastructure/configuration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

const (
	testBucket = "archive-bucket"
	testKey    = "raw-data/year=2024/month=03/day=07/hour=15/youtube_trending_stats_2024-03-07T15-04-05Z.json"
	testBody   = `{"kind":null,"etag":null,"items":[],"pageInfo":null}`
)

func fakeS3Config(endpoint string) configuration.S3 {
	return configuration.S3{
		Endpoint:  endpoint,
		Region:    "us-east-1",
		AccessKey: "test-access",
		SecretKey: "test-secret",
	}
}

func TestNewArchiveStore_UnknownProvider(t *testing.T) {
	_, err := NewArchiveStore(context.Background(), configuration.Storage{Provider: "ftp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ftp")
}

func TestNewArchiveStore_S3(t *testing.T) {
	store, err := NewArchiveStore(context.Background(), configuration.Storage{
		Provider: configuration.StorageS3,
		S3:       fakeS3Config("http://127.0.0.1:9000"),
	})
	require.NoError(t, err)
	assert.IsType(t, &S3Store{}, store)
}

func TestNewS3Store_RequiresEndpoint(t *testing.T) {
	_, err := NewS3Store(configuration.S3{})
	assert.Error(t, err)
}

func TestS3Store_PutObject(t *testing.T) {
	var gotPath, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := NewS3Store(fakeS3Config(srv.URL))
	require.NoError(t, err)

	err = store.PutObject(context.Background(), testBucket, testKey, []byte(testBody), "application/json")
	require.NoError(t, err)

	assert.Equal(t, "/"+testBucket+"/"+testKey, gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Contains(t, gotBody, testBody)
}

func TestS3Store_PutObject_AccessDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>AccessDenied</Code><Message>Access Denied</Message><BucketName>archive-bucket</BucketName></Error>`))
	}))
	defer srv.Close()

	store, err := NewS3Store(fakeS3Config(srv.URL))
	require.NoError(t, err)

	err = store.PutObject(context.Background(), testBucket, testKey, []byte(testBody), "application/json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Access Denied")
	assert.Contains(t, err.Error(), "s3://"+testBucket)
}

func TestGCSStore_PutObject(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bucket":"` + testBucket + `","name":"` + testKey + `","contentType":"application/json"}`))
	}))
	defer srv.Close()

	store, err := NewGCSStore(context.Background(), configuration.GCS{},
		option.WithEndpoint(srv.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	defer store.Close()

	err = store.PutObject(context.Background(), testBucket, testKey, []byte(testBody), "application/json")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(gotPath, "/b/"+testBucket+"/o"), gotPath)
	assert.Contains(t, gotBody, testBody)
	assert.Contains(t, gotBody, "application/json")
}

func TestNewGCSStore_MissingCredentialsFile(t *testing.T) {
	_, err := NewGCSStore(context.Background(), configuration.GCS{CredentialsFile: t.TempDir() + "/missing.json"})
	assert.Error(t, err)
}
