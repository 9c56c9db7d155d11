package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for invite QR code generation and parsing.
type QRCodeService interface {
	// GenerateInviteQR renders an invite token as a scannable PNG.
	GenerateInviteQR(token uuid.UUID) ([]byte, error)

	// ParseInviteQR parses QR payload data and returns the invite token.
	ParseInviteQR(qrData string) (uuid.UUID, error)
}
