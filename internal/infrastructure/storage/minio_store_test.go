package storage

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectURL(t *testing.T) {
	base, err := url.Parse("https://cdn.example.com/faces/")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/faces/faces/a.jpg", objectURL(base, false, "minio:9000", "bucket", "faces/a.jpg"))

	root, err := url.Parse("https://cdn.example.com")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/a.jpg", objectURL(root, false, "minio:9000", "bucket", "a.jpg"))

	require.Equal(t, "http://minio:9000/bucket/a.jpg", objectURL(nil, false, "minio:9000", "bucket", "a.jpg"))
	require.Equal(t, "https://minio:9000/bucket/a.jpg", objectURL(nil, true, "minio:9000", "bucket", "a.jpg"))
}
