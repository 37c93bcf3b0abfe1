package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetFileExtension(t *testing.T) {
	tests := map[string]string{
		"config.yaml":     "yaml",
		"dir/CONFIG.JSON": "json",
		"noext":           "",
		"archive.tar.gz":  "gz",
	}

	for input, want := range tests {
		if got := GetFileExtension(input); got != want {
			t.Errorf("GetFileExtension(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		name, prefix, suffix, format string
		want                         string
	}{
		{"AustriaPassportRecognizer_faceImage", "", "", "png", "AustriaPassportRecognizer_faceImage.png"},
		{"AustriaPassportRecognizer_faceImage", "scan1_", "", "webp", "scan1_AustriaPassportRecognizer_faceImage.webp"},
		{"in/face.png", "", "_small", "", "face_small.png"},
		{"face", "", "", "", "face.jpg"},
	}

	for _, tt := range tests {
		want := filepath.Join("out", tt.want)
		if got := GenerateOutputFilename(tt.name, "out", tt.prefix, tt.suffix, tt.format); got != want {
			t.Errorf("GenerateOutputFilename(%q) = %q, want %q", tt.name, got, want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"AustriaPassportRecognizer_faceImage": "AustriaPassportRecognizer_faceImage",
		"a/b:c":                               "a_b_c",
		"..hidden.":                           "hidden",
		"two words":                           "two_words",
	}

	for input, want := range tests {
		if got := SanitizeFilename(input); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestEnsureDirAndFileExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}

	if FileExists(dir) {
		t.Error("A directory should not be reported as a file")
	}

	path := filepath.Join(dir, "file.txt")
	if FileExists(path) {
		t.Error("Missing file should not exist")
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("Written file should exist")
	}

	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing directory failed: %v", err)
	}
}
