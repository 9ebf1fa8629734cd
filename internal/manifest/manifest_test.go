package manifest

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/vspec-dev/vspec/internal/core"
)

/* ------------------------------------------------------------------------- */
/* FIND                                                                      */
/* ------------------------------------------------------------------------- */

func TestFind_CurrentDirectory(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{"name": "app", "version": "1.0.0"}`))

	rec, err := Find(context.Background(), fsys, "/project", []string{"package.json"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if rec == nil {
		t.Fatal("Find returned nil record")
	}
	if rec.Path != "/project/package.json" {
		t.Errorf("Path = %q, want %q", rec.Path, "/project/package.json")
	}
	if rec.Name() != "app" {
		t.Errorf("Name() = %q, want %q", rec.Name(), "app")
	}
	if rec.Version() != "1.0.0" {
		t.Errorf("Version() = %q, want %q", rec.Version(), "1.0.0")
	}
}

func TestFind_AncestorDirectory(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{"name": "root"}`))
	fsys.SetFile("/project/packages/app/src/main.js", []byte("code"))

	rec, err := Find(context.Background(), fsys, "/project/packages/app/src", []string{"package.json"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if rec == nil {
		t.Fatal("Find returned nil record")
	}
	if rec.Path != "/project/package.json" {
		t.Errorf("Path = %q, want the ancestor manifest %q", rec.Path, "/project/package.json")
	}
}

func TestFind_CandidateOrder(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{"name": "from-json"}`))
	fsys.SetFile("/project/pubspec.yaml", []byte("name: from-yaml\n"))

	rec, err := Find(context.Background(), fsys, "/project", []string{"pubspec.yaml", "package.json"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if rec.Name() != "from-yaml" {
		t.Errorf("Name() = %q, want the first candidate to win", rec.Name())
	}
}

func TestFind_NearerManifestShadowsAncestor(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{"name": "root"}`))
	fsys.SetFile("/project/packages/app/package.json", []byte(`{"name": "app"}`))

	rec, err := Find(context.Background(), fsys, "/project/packages/app", []string{"package.json"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if rec.Name() != "app" {
		t.Errorf("Name() = %q, want %q", rec.Name(), "app")
	}
}

func TestFind_NotFound(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/elsewhere/file.txt", []byte("x"))

	rec, err := Find(context.Background(), fsys, "/project/deep/dir", []string{"package.json"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if rec != nil {
		t.Errorf("Find = %+v, want nil for not-found", rec)
	}
}

func TestFind_NotObjectContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"array", "[]"},
		{"primitive", "42"},
		{"null", "null"},
		{"string", `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := core.NewMockFileSystem()
			fsys.SetFile("/project/package.json", []byte(tt.content))

			_, err := Find(context.Background(), fsys, "/project", []string{"package.json"})
			var notObj *NotObjectError
			if !errors.As(err, &notObj) {
				t.Fatalf("Find error = %v, want NotObjectError", err)
			}
			if notObj.Path != "/project/package.json" {
				t.Errorf("NotObjectError.Path = %q, want the offending path", notObj.Path)
			}
			if !strings.Contains(err.Error(), "is not an object") {
				t.Errorf("error message %q should describe the shape problem", err.Error())
			}
		})
	}
}

func TestFind_MalformedStopsSearch(t *testing.T) {
	// A parse failure must abort the walk even when a valid manifest exists
	// further up.
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{"name": "root"}`))
	fsys.SetFile("/project/app/package.json", []byte(`{broken`))

	_, err := Find(context.Background(), fsys, "/project/app", []string{"package.json"})
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Find error = %v, want DecodeError", err)
	}
	if decodeErr.Path != "/project/app/package.json" {
		t.Errorf("DecodeError.Path = %q, want the nearer manifest", decodeErr.Path)
	}
}

// failReadFS fails reads for one path with a non-ENOENT error.
type failReadFS struct {
	*core.MockFileSystem
	failPath string
}

func (f *failReadFS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if path == f.failPath {
		return nil, errors.New("permission denied")
	}
	return f.MockFileSystem.ReadFile(ctx, path)
}

func TestFind_ReadErrorStopsSearch(t *testing.T) {
	inner := core.NewMockFileSystem()
	inner.SetFile("/project/package.json", []byte(`{"name": "root"}`))
	inner.SetFile("/project/app/keep.txt", []byte("x"))
	fsys := &failReadFS{MockFileSystem: inner, failPath: "/project/app/package.json"}

	_, err := Find(context.Background(), fsys, "/project/app", []string{"package.json"})
	if err == nil {
		t.Fatal("Find should propagate non-ENOENT read errors")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("error = %v, want the underlying read failure preserved", err)
	}
}

func TestFind_CancelledContext(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{"name": "app"}`))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Find(ctx, fsys, "/project", []string{"package.json"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Find error = %v, want context.Canceled", err)
	}
}

/* ------------------------------------------------------------------------- */
/* LOAD                                                                      */
/* ------------------------------------------------------------------------- */

func TestLoad(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{"name": "app", "version": "2.1.0"}`))

	rec, err := Load(context.Background(), fsys, "/project/package.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.Name() != "app" || rec.Version() != "2.1.0" {
		t.Errorf("Load = %q@%q, want app@2.1.0", rec.Name(), rec.Version())
	}
}

func TestLoad_Missing(t *testing.T) {
	fsys := core.NewMockFileSystem()

	_, err := Load(context.Background(), fsys, "/project/package.json")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load error = %v, want fs.ErrNotExist preserved through wrapping", err)
	}
}
