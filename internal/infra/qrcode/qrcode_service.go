package qrcode

import (
	"encoding/json"
	"fmt"

	"skillconnect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	baseURL              string
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	JobID string `json:"job_id"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		baseURL:              baseURL,
		errorCorrectionLevel: level,
	}
}

// GenerateJobShareQR generates a QR code that links to a job posting
func (s *qrcodeService) GenerateJobShareQR(jobID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		JobID: jobID.String(),
		Type:  "job_share",
		URL:   fmt.Sprintf("%s/jobs/%s", s.baseURL, jobID),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseJobShareQR parses QR code data and returns the job ID
func (s *qrcodeService) ParseJobShareQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "job_share" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	jobID, err := uuid.Parse(data.JobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse job ID: %w", err)
	}

	return jobID, nil
}
