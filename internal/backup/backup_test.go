package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validDoc = `{"reflections": [], "sleepData": {}, "exportedAt": "2024-06-01T00:00:00Z", "appVersion": "2.5.0"}`

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(filepath.Join(t.TempDir(), "mindful.db"))
}

func TestWriteBackup(t *testing.T) {
	m := newTestManager(t)

	path, err := m.WriteBackup([]byte(validDoc))
	if err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
		t.Errorf("unexpected backup filename %q", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written backup: %v", err)
	}
	if string(data) != validDoc {
		t.Error("backup content does not match the export document")
	}
}

func TestWriteBackup_CollisionGetsUniqueName(t *testing.T) {
	m := newTestManager(t)

	first, err := m.WriteBackup([]byte(validDoc))
	if err != nil {
		t.Fatalf("first WriteBackup failed: %v", err)
	}
	second, err := m.WriteBackup([]byte(validDoc))
	if err != nil {
		t.Fatalf("second WriteBackup failed: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct filenames, both were %q", first)
	}
}

func TestReadBackup(t *testing.T) {
	m := newTestManager(t)

	path, err := m.WriteBackup([]byte(validDoc))
	if err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}

	data, err := m.ReadBackup(path)
	if err != nil {
		t.Fatalf("ReadBackup failed: %v", err)
	}
	if string(data) != validDoc {
		t.Error("ReadBackup returned different content")
	}
}

func TestReadBackup_RejectsInvalidDocument(t *testing.T) {
	m := newTestManager(t)
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	bad := filepath.Join(m.GetBackupDir(), "mindful-20240601-0000.json")
	if err := os.WriteFile(bad, []byte(`{"nothing": true}`), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := m.ReadBackup(bad); err == nil {
		t.Error("expected an invalid backup document to be rejected")
	}
}

func TestListBackups(t *testing.T) {
	m := newTestManager(t)

	// No backup dir yet: empty list, no error.
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("expected no backups, got %d", len(backups))
	}

	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	names := []string{
		"mindful-20240601-0900.json",
		"mindful-20240603-0900.json",
		"mindful-20240602-0900.json",
		"unrelated.txt",
		"mindful-notadate.json",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte(validDoc), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err = m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 recognized backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("backups not sorted newest first")
		}
	}
	if filepath.Base(backups[0].Path) != "mindful-20240603-0900.json" {
		t.Errorf("expected newest backup first, got %q", backups[0].Path)
	}
}

func TestWriteBackup_RotatesOldBackups(t *testing.T) {
	m := newTestManager(t)
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	// Seed MaxBackups older files; the next write must push the oldest out.
	for i := 0; i < MaxBackups; i++ {
		name := filepath.Join(m.GetBackupDir(),
			BackupFilePrefix+time20240501(i)+BackupFileSuffix)
		if err := os.WriteFile(name, []byte(validDoc), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := m.WriteBackup([]byte(validDoc)); err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected rotation to keep %d backups, got %d", MaxBackups, len(backups))
	}
	for _, b := range backups {
		if filepath.Base(b.Path) == "mindful-20240501-0000.json" {
			t.Error("expected the oldest backup to be rotated out")
		}
	}
}

// time20240501 formats a fake minute-precision timestamp i minutes past
// midnight on 2024-05-01.
func time20240501(i int) string {
	return "20240501-00" + string(rune('0'+i/10)) + string(rune('0'+i%10))
}

func TestStripCounterSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20240601-0900", "20240601-0900"},
		{"20240601-090015", "20240601-090015"},
		{"20240601-090015-1", "20240601-090015"},
		{"20240601-090015-12", "20240601-090015"},
		{"20240601-0900-abc", "20240601-0900-abc"},
	}

	for _, tt := range tests {
		if got := stripCounterSuffix(tt.in); got != tt.want {
			t.Errorf("stripCounterSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
