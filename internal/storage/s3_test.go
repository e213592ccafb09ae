package storage

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	miniogo "github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/minio"
)

func TestValidateContentType(t *testing.T) {
	for _, ct := range []string{ContentTypePNG, ContentTypeSVG, ContentTypePDF} {
		assert.NoError(t, ValidateContentType(ct), ct)
	}
	assert.Error(t, ValidateContentType("audio/wav"))
	assert.Error(t, ValidateContentType(""))
}

func TestNewS3Service_RequiresBucket(t *testing.T) {
	_, err := NewS3Service(context.Background(), S3Config{})
	assert.Error(t, err)
}

func TestNewS3Service_DefaultExpiry(t *testing.T) {
	svc, err := NewS3Service(context.Background(), S3Config{
		Bucket:    "charts",
		Endpoint:  "localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.URLExpiry())
}

// TestS3Service_Integration round-trips a chart through a real MinIO server
func TestS3Service_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	minioContainer, err := minio.Run(ctx,
		"minio/minio:RELEASE.2024-10-29T16-01-48Z",
		minio.WithUsername("minioadmin"),
		minio.WithPassword("minioadmin"),
	)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, minioContainer.Terminate(ctx))
	}()

	endpoint, err := minioContainer.ConnectionString(ctx)
	require.NoError(t, err)

	bucket := "charts-test-" + uuid.New().String()[:8]
	mc, err := miniogo.New(endpoint, &miniogo.Options{
		Creds:  miniocreds.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	require.NoError(t, err)
	require.NoError(t, mc.MakeBucket(ctx, bucket, miniogo.MakeBucketOptions{}))

	svc, err := NewS3Service(ctx, S3Config{
		Bucket:    bucket,
		Endpoint:  endpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		URLExpiry: time.Hour,
	})
	require.NoError(t, err)

	key := "charts/" + uuid.New().String() + ".svg"
	data := []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)

	t.Run("upload rejects unsupported types", func(t *testing.T) {
		assert.Error(t, svc.UploadFile(ctx, key, "text/plain", data))
	})

	t.Run("upload and download", func(t *testing.T) {
		require.NoError(t, svc.UploadFile(ctx, key, ContentTypeSVG, data))

		got, err := svc.DownloadFile(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, data, got)

		info, err := mc.StatObject(ctx, bucket, key, miniogo.StatObjectOptions{})
		require.NoError(t, err)
		assert.Equal(t, ContentTypeSVG, info.ContentType)
	})

	t.Run("presigned download", func(t *testing.T) {
		url, err := svc.GenerateDownloadURL(ctx, key)
		require.NoError(t, err)

		resp, err := http.Get(url)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteFile(ctx, key))
		_, err := svc.DownloadFile(ctx, key)
		assert.Error(t, err)
	})
}
