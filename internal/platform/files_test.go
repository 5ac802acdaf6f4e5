package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetDefaultExportDir(t *testing.T) {
	dir, err := GetDefaultExportDir()
	if err != nil {
		t.Fatalf("Failed to get export directory: %v", err)
	}

	if filepath.Base(dir) != "QRMaster" {
		t.Errorf("Expected directory to end with 'QRMaster', got: %s", dir)
	}
}

func TestRevealFile_NonExistentFile(t *testing.T) {
	err := RevealFile(filepath.Join(t.TempDir(), "nonexistent.png"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestUniqueFilePath(t *testing.T) {
	dir := t.TempDir()

	first, err := UniqueFilePath(dir, "qr.png")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first != filepath.Join(dir, "qr.png") {
		t.Errorf("Expected plain name, got %s", first)
	}

	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	second, err := UniqueFilePath(dir, "qr.png")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if second != filepath.Join(dir, "qr-1.png") {
		t.Errorf("Expected suffixed name, got %s", second)
	}
}

func TestNotifyMediaScanner_NonAndroid(t *testing.T) {
	if isAndroid() {
		t.Skip("running on Android")
	}
	if err := NotifyMediaScanner("/tmp/none.png"); err != nil {
		t.Errorf("Expected no-op off Android, got %v", err)
	}
}
