// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/notes-keeper/models"
)

const testHashKey = "test-secret-key"

func TestHasher_Sum(t *testing.T) {
	hasher := NewHasher(testHashKey)

	data := []byte("test-data")

	sum1 := hasher.Sum(data)
	sum2 := hasher.Sum(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_WithNotePayload(t *testing.T) {
	hasher := NewHasher(testHashKey)

	body, err := json.Marshal(models.NoteInput{Title: "Groceries", Content: "milk, eggs"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	sig := hasher.SumHex(body)
	if sig != HashString(string(body), testHashKey) {
		t.Fatal("SumHex and HashString must agree")
	}

	if !hasher.Verify(body, sig) {
		t.Fatal("signature of the same body must verify")
	}

	tampered := bytes.Replace(body, []byte("milk"), []byte("beer"), 1)
	if hasher.Verify(tampered, sig) {
		t.Fatal("signature must not verify a modified body")
	}
}

func TestHasher_VerifyRejectsMalformedSignature(t *testing.T) {
	hasher := NewHasher(testHashKey)

	for _, sig := range []string{"", "zz", "abc"} {
		if hasher.Verify([]byte("x"), sig) {
			t.Errorf("signature %q must not verify", sig)
		}
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	a := NewHasher("key-a").SumHex([]byte("data"))
	b := NewHasher("key-b").SumHex([]byte("data"))

	if a == b {
		t.Fatal("different keys must produce different digests")
	}
	if _, err := hex.DecodeString(a); err != nil {
		t.Fatalf("digest is not hex: %v", err)
	}
}

func TestHasher_ConcurrentUse(t *testing.T) {
	hasher := NewHasher(testHashKey)
	want := hasher.SumHex([]byte("payload"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := hasher.SumHex([]byte("payload")); got != want {
				t.Errorf("concurrent digest mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}
