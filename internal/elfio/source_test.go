package elfio

import (
	"bytes"
	"errors"
	"os"
	"testing"

	gomock "go.uber.org/mock/gomock"
)

func TestLoadPropagatesSourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := NewMockSource(ctrl)
	wantErr := errors.New("boom")
	src.EXPECT().Read().Return(nil, wantErr)

	_, err := Load(src)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

func TestLoadRejectsMalformedImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := NewMockSource(ctrl)
	src.EXPECT().Read().Return([]byte("not an elf file"), nil)

	if _, err := Load(src); err == nil {
		t.Fatal("expected decode error for malformed input")
	}
}

func TestFileSourceReadsBytes(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/x.bin"
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	got, err := (FileSource{Path: path}).Read()
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("got %v", got)
	}
}
