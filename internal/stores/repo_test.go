package stores

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/danieljhkim/planner/internal/fsops"
	"github.com/danieljhkim/planner/internal/planner"
)

// setupCatalog creates a catalog over a temporary directory for testing.
func setupCatalog(t *testing.T) (string, *FileCatalog) {
	t.Helper()

	tmpDir := t.TempDir()
	return tmpDir, NewFileCatalog(fsops.NewRealFS(), tmpDir)
}

func TestFileCatalog_List(t *testing.T) {
	t.Run("returns empty list when directory does not exist", func(t *testing.T) {
		catalog := NewFileCatalog(fsops.NewRealFS(), filepath.Join(t.TempDir(), "nonexistent"))

		names, err := catalog.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("expected empty list, got %v", names)
		}
	})

	t.Run("returns planner files only", func(t *testing.T) {
		tmpDir, catalog := setupCatalog(t)

		for _, name := range []string{"my-planner", "my-planner-2"} {
			if err := planner.New().Save(tmpDir, name); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
		}
		// Non-planner entries are ignored
		if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
		if err := os.Mkdir(filepath.Join(tmpDir, "folder.pln"), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}

		names, err := catalog.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if !slices.Equal(names, []string{"my-planner", "my-planner-2"}) {
			t.Errorf("List() = %v", names)
		}
	})
}

func TestFileCatalog_Exists(t *testing.T) {
	tmpDir, catalog := setupCatalog(t)
	if err := planner.New().Save(tmpDir, "work"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if ok, err := catalog.Exists("work"); err != nil || !ok {
		t.Errorf("Exists(work) = %v, %v", ok, err)
	}
	if ok, err := catalog.Exists("home"); err != nil || ok {
		t.Errorf("Exists(home) = %v, %v", ok, err)
	}
	if err := os.Mkdir(planner.Path(tmpDir, "folder"), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if ok, err := catalog.Exists("folder"); err != nil || ok {
		t.Errorf("Exists(folder) = %v, %v; a directory is not a planner", ok, err)
	}
	if _, err := catalog.Exists("../work"); err == nil {
		t.Error("expected error for traversal name")
	}
}

func TestFileCatalog_Delete(t *testing.T) {
	t.Run("removes planner file", func(t *testing.T) {
		tmpDir, catalog := setupCatalog(t)
		if err := planner.New().Save(tmpDir, "default_planner"); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		if err := catalog.Delete("default_planner"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := os.Stat(planner.Path(tmpDir, "default_planner")); !os.IsNotExist(err) {
			t.Error("planner file should be gone")
		}
	})

	t.Run("missing planner reports not found", func(t *testing.T) {
		_, catalog := setupCatalog(t)

		err := catalog.Delete("default_planner")
		if !errors.Is(err, ErrPlannerNotFound) {
			t.Errorf("Delete() error = %v, want ErrPlannerNotFound", err)
		}
	})

	t.Run("invalid name is rejected", func(t *testing.T) {
		_, catalog := setupCatalog(t)

		if err := catalog.Delete(""); err == nil {
			t.Error("expected error for empty name")
		}
	})
}

func TestFileCatalog_Path(t *testing.T) {
	tmpDir, catalog := setupCatalog(t)

	path, err := catalog.Path("work")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if path != filepath.Join(tmpDir, "work.pln") {
		t.Errorf("Path() = %s", path)
	}
	if catalog.Dir() != tmpDir {
		t.Errorf("Dir() = %s", catalog.Dir())
	}
}
