package service

import "github.com/google/uuid"

// QRCodeService defines the interface for generating and parsing job share QR codes.
type QRCodeService interface {
	// GenerateJobShareQR renders a PNG QR code that encodes a reference to a job posting.
	GenerateJobShareQR(jobID uuid.UUID) ([]byte, error)

	// ParseJobShareQR decodes QR payload data back into the job posting ID.
	ParseJobShareQR(qrData string) (uuid.UUID, error)
}
