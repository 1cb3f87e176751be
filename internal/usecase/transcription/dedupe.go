package transcription

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the opaque equality token for an audio blob. It detects
// resubmission of the same recording only; a re-recorded but byte-identical
// utterance is indistinguishable from a duplicate.
func Fingerprint(audio []byte) string {
	sum := sha256.Sum256(audio)
	return hex.EncodeToString(sum[:])
}

// ShouldProcess decides whether candidate audio represents a new recording.
// Pure function: the caller persists the returned fingerprint as the session's
// last accepted token. Nil or empty audio means no new recording this cycle.
func ShouldProcess(candidate []byte, lastFingerprint string) (bool, string) {
	if len(candidate) == 0 {
		return false, lastFingerprint
	}
	fp := Fingerprint(candidate)
	if fp == lastFingerprint {
		return false, lastFingerprint
	}
	return true, fp
}
