package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// maxTraceIDLength bounds caller-supplied trace IDs before they reach logs.
const maxTraceIDLength = 128

// UUIDGenerator issues the trace IDs attached to requests and log lines.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TraceID keeps an incoming trace ID when it is short and printable, and
// generates a fresh one otherwise.
func (g *UUIDGenerator) TraceID(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" || len(incoming) > maxTraceIDLength {
		return g.Generate()
	}

	for _, r := range incoming {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return g.Generate()
		}
	}

	return incoming
}
