// file: internal/fileops/safe_operations.go
// version: 2.0.0
// guid: 8f7e6d5c-4b3a-2918-7f6e-5d4c3b2a1908

package fileops

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// WriteConfig configures SafeWrite
type WriteConfig struct {
	// BackupDir holds copies of replaced files. Relative paths resolve
	// against the target's directory; empty means the target's directory.
	BackupDir string
	// VerifyChecksums re-reads the written file and compares SHA256
	VerifyChecksums bool
	// MaxBackups limits the number of backups kept per file, 0 for no limit
	MaxBackups int
	// Perm is the mode of a newly created file
	Perm os.FileMode
}

// DefaultWriteConfig returns the configuration used for user-editable files.
func DefaultWriteConfig() WriteConfig {
	return WriteConfig{
		VerifyChecksums: true,
		MaxBackups:      3,
		Perm:            0o644,
	}
}

// SafeWrite replaces path with data. The data goes to a temp file in the
// same directory which is then renamed over the target, so readers never
// see a partial file. An existing target is copied to a timestamped
// backup first.
func SafeWrite(path string, data []byte, cfg WriteConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	perm := cfg.Perm
	if perm == 0 {
		perm = 0o644
	}

	var backupPath string
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		perm = info.Mode().Perm()
		backupPath, err = backupFile(path, cfg.BackupDir)
		if err != nil {
			return fmt.Errorf("failed to backup existing file: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	if cfg.VerifyChecksums {
		ok, err := VerifyFileIntegrity(path, HashBytes(data))
		if err != nil {
			return fmt.Errorf("failed to verify %s: %w", path, err)
		}
		if !ok {
			if backupPath != "" {
				_ = copyFile(backupPath, path)
			}
			return fmt.Errorf("checksum mismatch: %s failed integrity check", path)
		}
	}

	if backupPath != "" && cfg.MaxBackups > 0 {
		if err := cleanupOldBackups(path, filepath.Dir(backupPath), cfg.MaxBackups); err != nil {
			log.Printf("[WARN] Failed to cleanup old backups of %s: %v", path, err)
		}
	}
	return nil
}

// VerifyFileIntegrity reports whether path hashes to expectedHash.
func VerifyFileIntegrity(path, expectedHash string) (bool, error) {
	hash, err := ComputeFileHash(path)
	if err != nil {
		return false, err
	}
	return hash == expectedHash, nil
}

func backupDirFor(path, backupDir string) string {
	switch {
	case backupDir == "":
		return filepath.Dir(path)
	case filepath.IsAbs(backupDir):
		return backupDir
	default:
		return filepath.Join(filepath.Dir(path), backupDir)
	}
}

func backupFile(path, backupDir string) (string, error) {
	dir := backupDirFor(path, backupDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	timestamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(dir, fmt.Sprintf("%s.%s.backup", filepath.Base(path), timestamp))
	if err := copyFile(path, backupPath); err != nil {
		return "", err
	}
	return backupPath, nil
}

// cleanupOldBackups keeps the newest keep backups of path. Backup names
// embed a sortable timestamp so glob order is oldest first.
func cleanupOldBackups(path, dir string, keep int) error {
	pattern := filepath.Join(dir, fmt.Sprintf("%s.*.backup", filepath.Base(path)))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if len(matches) <= keep {
		return nil
	}

	for _, old := range matches[:len(matches)-keep] {
		if err := os.Remove(old); err != nil {
			log.Printf("[WARN] Failed to remove old backup %s: %v", old, err)
		}
	}
	return nil
}

// copyFile copies src to dst, preserving permissions
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}
	if err := destFile.Sync(); err != nil {
		return err
	}

	sourceInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chmod(dst, sourceInfo.Mode())
}
