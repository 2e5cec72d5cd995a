package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// backupUploads copies the uploads directory into a timestamped snapshot
// under backupDir and prunes snapshots older than retention.
func backupUploads(srcDir, backupDir string, retention time.Duration) {
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return
	}

	destDir := filepath.Join(backupDir, time.Now().Format("2006-01-02_15-04-05"))
	if err := copyDir(srcDir, destDir); err != nil {
		zap.S().Errorf("backup: copy failed: %v", err)
		return
	}
	zap.S().Infof("backup: uploads copied to %s", destDir)

	cleanupOldBackups(backupDir, retention)
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(backupDir, entry.Name())
			if err := os.RemoveAll(path); err != nil {
				zap.S().Warnf("backup: prune %s: %v", path, err)
			} else {
				zap.S().Infof("backup: pruned old snapshot %s", path)
			}
		}
	}
}
