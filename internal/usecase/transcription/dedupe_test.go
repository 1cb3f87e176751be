package transcription

import "testing"

func TestShouldProcess_NewAudio(t *testing.T) {
	ok, fp := ShouldProcess([]byte("recording-one"), "")
	if !ok {
		t.Fatal("new audio should be processed")
	}
	if fp == "" {
		t.Fatal("expected a fingerprint for new audio")
	}
}

func TestShouldProcess_Duplicate(t *testing.T) {
	audio := []byte("recording-one")
	_, fp := ShouldProcess(audio, "")

	ok, fp2 := ShouldProcess(audio, fp)
	if ok {
		t.Fatal("byte-identical audio must not be processed twice")
	}
	if fp2 != fp {
		t.Fatalf("fingerprint changed on duplicate: %s != %s", fp2, fp)
	}
}

func TestShouldProcess_EmptyAudio(t *testing.T) {
	ok, fp := ShouldProcess(nil, "previous")
	if ok {
		t.Fatal("absent audio must not be processed")
	}
	if fp != "previous" {
		t.Fatalf("fingerprint must be preserved, got %s", fp)
	}

	ok, _ = ShouldProcess([]byte{}, "previous")
	if ok {
		t.Fatal("empty audio must not be processed")
	}
}

func TestShouldProcess_DifferentAudio(t *testing.T) {
	_, fp1 := ShouldProcess([]byte("recording-one"), "")
	ok, fp2 := ShouldProcess([]byte("recording-two"), fp1)
	if !ok {
		t.Fatal("different audio should be processed")
	}
	if fp2 == fp1 {
		t.Fatal("different audio must yield a different fingerprint")
	}
}
