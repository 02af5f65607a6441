package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := entryCodec{}
	entry := Entry{
		Status:      200,
		ContentType: "application/json",
		TotalCount:  "42",
		Body:        []byte(`[{"id":1,"name":"Action"}]`),
	}

	raw, err := codec.encode(entry)
	require.NoError(t, err)

	decoded, ok := codec.decode(raw)
	require.True(t, ok)
	assert.Equal(t, entry, decoded)
}

func TestCodecRoundTripWithoutTotalCount(t *testing.T) {
	codec := entryCodec{}
	entry := Entry{
		Status:      200,
		ContentType: "application/json",
		Body:        []byte(`{"id":1}`),
	}

	raw, err := codec.encode(entry)
	require.NoError(t, err)

	decoded, ok := codec.decode(raw)
	require.True(t, ok)
	assert.Equal(t, entry.Status, decoded.Status)
	assert.Empty(t, decoded.TotalCount)
	assert.Equal(t, entry.Body, decoded.Body)
}

func TestCodecRejectsTruncatedPayloads(t *testing.T) {
	codec := entryCodec{}
	entry := Entry{Status: 200, ContentType: "application/json", Body: []byte("x")}

	raw, err := codec.encode(entry)
	require.NoError(t, err)

	for _, n := range []int{0, 4, 7} {
		_, ok := codec.decode(raw[:n])
		assert.False(t, ok, "payload truncated to %d bytes", n)
	}
}

func TestCodecEmptyBody(t *testing.T) {
	codec := entryCodec{}

	raw, err := codec.encode(Entry{Status: 204})
	require.NoError(t, err)

	decoded, ok := codec.decode(raw)
	require.True(t, ok)
	assert.Equal(t, 204, decoded.Status)
	assert.Empty(t, decoded.Body)
}
