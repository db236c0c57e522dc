package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 0)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_BaseURLTrimmed(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080///", 0)

	assert.Equal(t, "http://localhost:8080", client.BaseURL)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 3*time.Second)

	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}
