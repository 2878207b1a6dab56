package s3

import (
	"testing"

	"crowdfund/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPublicURL(t *testing.T) {
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com",
		defaultPublicURL("", true, "eu-west-1", "media"))
	assert.Equal(t, "https://media.s3.us-east-1.amazonaws.com",
		defaultPublicURL("", true, "", "media"))
	assert.Equal(t, "http://localhost:9000/media",
		defaultPublicURL("http://localhost:9000", false, "us-east-1", "media"))
	assert.Equal(t, "https://minio.internal/media",
		defaultPublicURL("minio.internal", true, "us-east-1", "media"))
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/avatars/1/a.png", ObjectURL("https://cdn.example.com/", "/avatars/1/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", ObjectURL("https://cdn.example.com", "a.png"))
}

func TestNewClient_PublicURLOverride(t *testing.T) {
	client, err := NewClient(&config.Config{
		AWSRegion:    "us-east-1",
		S3BucketName: "media",
		S3PublicURL:  "https://cdn.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com", client.publicURL)
	assert.Equal(t, "media", client.bucket)
}
