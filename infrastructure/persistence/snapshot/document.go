// Package snapshot defines the on-disk shape of the catalog and the
// drivers that store it. Every driver writes the complete document on
// each save; none of them is incremental.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"zookeepr/domain/core/entities"
)

// Driver names
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverDynamoDB = "dynamodb"
	DriverS3       = "s3"
	DriverMemory   = "memory"
)

// Document is the stored form: { "animals": [ ... ] }
type Document struct {
	Animals []entities.Animal `json:"animals"`
}

// Encode renders the collection as a human readable document with two-space
// indentation and no trailing newline.
func Encode(animals []entities.Animal) ([]byte, error) {
	if animals == nil {
		animals = []entities.Animal{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Animals: animals}); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a stored document. Missing or null animals decode to an
// empty collection.
func Decode(data []byte) ([]entities.Animal, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []entities.Animal{}, nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Animals == nil {
		return []entities.Animal{}, nil
	}
	for i := range doc.Animals {
		if doc.Animals[i].PersonalityTraits == nil {
			doc.Animals[i].PersonalityTraits = entities.Traits{}
		}
	}
	return doc.Animals, nil
}
