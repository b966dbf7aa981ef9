package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idOnly struct {
	ID int64 `json:"id"`
}

func TestDecodeList_AllEnvelopeShapes(t *testing.T) {
	bodies := map[string]string{
		"bare array": `[{"id":1}]`,
		"data key":   `{"data":[{"id":1}]}`,
		"entity key": `{"users":[{"id":1}]}`,
		"pitchs key": `{"pitchs":[{"id":1}]}`,
		"localities": `{"localities":[{"id":1}]}`,
	}

	for name, body := range bodies {
		items, err := DecodeList[idOnly]([]byte(body))
		require.NoError(t, err, name)
		require.Len(t, items, 1, name)
		assert.Equal(t, int64(1), items[0].ID, name)
	}
}

func TestDecodeList_EmptyArray(t *testing.T) {
	items, err := DecodeList[idOnly]([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDecodeList_UnexpectedFormat(t *testing.T) {
	_, err := DecodeList[idOnly]([]byte(`{"weird":{"id":1}}`))
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindBadResponse, apiErr.Kind)
}

func TestDecodeOne_BareAndWrapped(t *testing.T) {
	one, err := DecodeOne[idOnly]([]byte(`{"id":9}`))
	require.NoError(t, err)
	assert.Equal(t, int64(9), one.ID)

	one, err = DecodeOne[idOnly]([]byte(`{"data":{"id":9}}`))
	require.NoError(t, err)
	assert.Equal(t, int64(9), one.ID)
}
