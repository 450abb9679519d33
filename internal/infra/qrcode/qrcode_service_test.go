package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateOrderQR_ReturnsPNG(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GenerateOrderQR("ZAM-1B9D6BCD")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(png, pngHeader), "payload must be a PNG image")
}

func TestNewQRCodeService_RecoveryLevels(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "unknown"} {
		service := NewQRCodeService(128, level)

		png, err := service.GenerateOrderQR("ZAM-1B9D6BCD")
		require.NoError(t, err, "level %s", level)
		assert.NotEmpty(t, png)
	}
}
