package store

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslate_NoDocuments(t *testing.T) {
	err := translate(fmt.Errorf("decode: %w", mongo.ErrNoDocuments))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestTranslate_DuplicateKey(t *testing.T) {
	writeErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Index: 0, Code: 11000, Message: "E11000 duplicate key error collection: job_app.users index: uniq_email"}},
	}

	err := translate(writeErr)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey got %v", err)
	}
}

func TestTranslate_PassThrough(t *testing.T) {
	cause := errors.New("server selection error")
	if err := translate(cause); err != cause {
		t.Fatalf("expected untouched error got %v", err)
	}
	if translate(nil) != nil {
		t.Fatal("expected nil")
	}
}
