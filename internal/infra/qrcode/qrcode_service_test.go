package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://skillconnect.co.ke")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateJobShareQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://skillconnect.co.ke")
	jobID := uuid.New()

	qrBytes, err := service.GenerateJobShareQR(jobID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateJobShareQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://skillconnect.co.ke")

			qrBytes, err := service.GenerateJobShareQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseJobShareQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://skillconnect.co.ke")
	jobID := uuid.New()

	data := QRCodeData{
		JobID: jobID.String(),
		Type:  "job_share",
		URL:   "https://skillconnect.co.ke/jobs/" + jobID.String(),
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseJobShareQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, jobID, parsedID)
}

func TestQRCodeService_ParseJobShareQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://skillconnect.co.ke")

	_, err := service.ParseJobShareQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseJobShareQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://skillconnect.co.ke")

	data := QRCodeData{
		JobID: uuid.New().String(),
		Type:  "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseJobShareQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseJobShareQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://skillconnect.co.ke")

	data := QRCodeData{
		JobID: "not-a-valid-uuid",
		Type:  "job_share",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseJobShareQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse job ID")
}
