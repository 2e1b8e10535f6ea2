package model

import (
	"encoding/json"
	"fmt"
)

// Record is implemented by every top-level record kind.
type Record interface {
	RecordID() int
	RecordName() string
	RecordSource() Source
}

// Document is the serialized form of a record handed to a sink.
type Document struct {
	ID   int
	Name string

	// Body is the JSON encoding of the record. Field order follows the
	// struct declaration and list order follows the record.
	Body json.RawMessage
}

// ToDocument serializes a record.
func ToDocument(r Record) (Document, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to serialize record %d: %w", r.RecordID(), err)
	}
	return Document{ID: r.RecordID(), Name: r.RecordName(), Body: body}, nil
}

// ToDocuments serializes records in order.
func ToDocuments[R Record](records []R) ([]Document, error) {
	docs := make([]Document, 0, len(records))
	for _, r := range records {
		doc, err := ToDocument(r)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
