package services

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRService_DataURL(t *testing.T) {
	svc := NewQRService()

	url, err := svc.DataURL(`{"orderId":1,"packageId":7,"activationCode":"ESIM-1-7-ABCD1234"}`)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestQRService_DataURL_EmptyData(t *testing.T) {
	svc := NewQRService()

	_, err := svc.DataURL("")
	assert.Error(t, err)
}
