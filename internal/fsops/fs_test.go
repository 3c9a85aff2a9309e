package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRealFS_ValidateIdentifier(t *testing.T) {
	fs := &RealFS{}

	tests := []struct {
		name      string
		id        string
		wantError bool
	}{
		{
			name:      "default planner name",
			id:        "default_planner",
			wantError: false,
		},
		{
			name:      "name with dashes and digits",
			id:        "my-planner-2",
			wantError: false,
		},
		{
			name:      "hidden-style name",
			id:        ".work",
			wantError: false,
		},
		{
			name:      "empty name",
			id:        "",
			wantError: true,
		},
		{
			name:      "current directory",
			id:        ".",
			wantError: true,
		},
		{
			name:      "parent directory",
			id:        "..",
			wantError: true,
		},
		{
			name:      "dot-dot prefix",
			id:        "..notes",
			wantError: false,
		},
		{
			name:      "forward slash",
			id:        "work/home",
			wantError: true,
		},
		{
			name:      "backslash",
			id:        "work\\home",
			wantError: true,
		},
		{
			name:      "absolute path",
			id:        "/etc/passwd",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fs.ValidateIdentifier(tt.id)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantError %v", tt.id, err, tt.wantError)
			}
		})
	}
}

func TestRealFS_MkdirAll(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	nested := filepath.Join(tmpDir, "a", "b", "planner")
	if err := fs.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if _, err := os.Stat(nested); os.IsNotExist(err) {
		t.Error("nested directory was not created")
	}

	// Second call is a no-op
	if err := fs.MkdirAll(nested, 0755); err != nil {
		t.Errorf("second MkdirAll should not fail: %v", err)
	}
}

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	t.Run("write to new file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "new.pln")
		content := []byte(`{"events":[]}`)

		if err := fs.AtomicWrite(path, content, 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content mismatch: got %q, want %q", got, content)
		}
	})

	t.Run("overwrite existing file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "existing.pln")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("failed to create initial file: %v", err)
		}

		if err := fs.AtomicWrite(path, []byte("new"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(got) != "new" {
			t.Errorf("content not updated: got %q", got)
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		if err := fs.AtomicWrite(filepath.Join(dir, "clean.pln"), []byte("x"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir failed: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected exactly one entry, got %d", len(entries))
		}
	})

	t.Run("fails when directory is missing", func(t *testing.T) {
		path := filepath.Join(tmpDir, "does", "not", "exist.pln")
		if err := fs.AtomicWrite(path, []byte("x"), 0644); err == nil {
			t.Error("AtomicWrite should fail when the parent directory is missing")
		}
	})
}

func TestRealFS_ReadFile(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	t.Run("read existing file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "read.pln")
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		got, err := fs.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(got) != "content" {
			t.Errorf("ReadFile content mismatch: got %q", got)
		}
	})

	t.Run("read missing file", func(t *testing.T) {
		_, err := fs.ReadFile(filepath.Join(tmpDir, "missing.pln"))
		if !os.IsNotExist(err) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})
}

func TestRealFS_ReadDir(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	for _, name := range []string{"b.pln", "a.pln"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), nil, 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	entries, err := fs.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Name() != "a.pln" || entries[1].Name() != "b.pln" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestRealFS_Remove(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "remove-me.pln")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if err := fs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should have been removed")
	}

	if err := fs.Remove(path); !os.IsNotExist(err) {
		t.Errorf("removing twice should report not-exist, got %v", err)
	}
}

func TestRealFS_IsFile(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "work.pln")
	if err := os.WriteFile(file, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	dir := filepath.Join(tmpDir, "dir.pln")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing", path: filepath.Join(tmpDir, "missing.pln"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.IsFile(tt.path)
			if err != nil {
				t.Fatalf("IsFile returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
