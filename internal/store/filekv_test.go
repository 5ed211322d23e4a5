package store

import (
	"path/filepath"
	"testing"
)

func TestFileKVRoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV error: %v", err)
	}

	if _, ok, err := kv.Get("users"); err != nil || ok {
		t.Fatalf("Get on fresh dir = ok=%v err=%v, want absent", ok, err)
	}

	want := []byte(`{"version":1,"items":[]}`)
	if err := kv.Set("users", want); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, ok, err := kv.Get("users")
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v", ok, err)
	}
	if string(got) != string(want) {
		t.Fatalf("Get = %s, want %s", got, want)
	}

	if err := kv.Delete("users"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok, _ := kv.Get("users"); ok {
		t.Fatal("Get after Delete reported a value")
	}
	if err := kv.Delete("users"); err != nil {
		t.Fatalf("second Delete must be a no-op, got %v", err)
	}
}

func TestFileKVRequiresBasePath(t *testing.T) {
	if _, err := NewFileKV("  "); err == nil {
		t.Fatal("expected error for blank base path")
	}
}

func TestFileKVCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "data")
	kv, err := NewFileKV(base)
	if err != nil {
		t.Fatalf("NewFileKV error: %v", err)
	}
	if kv.BasePath() != base {
		t.Fatalf("BasePath = %q, want %q", kv.BasePath(), base)
	}
	if err := kv.Set("config", []byte(`{}`)); err != nil {
		t.Fatalf("Set into created dir error: %v", err)
	}
}

func TestStoreOverFileKV(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV error: %v", err)
	}
	st := New(kv)
	if err := st.Init(); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	// A second store over the same directory sees the seeded data, not
	// a fresh seed.
	st2 := New(kv)
	packages, version, err := st2.Packages()
	if err != nil {
		t.Fatalf("Packages error: %v", err)
	}
	if version != 1 {
		t.Fatalf("version = %d, want 1 from the original seed", version)
	}
	if len(packages) != 2 {
		t.Fatalf("len(packages) = %d, want 2", len(packages))
	}
}
