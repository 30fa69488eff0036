package source

import (
	"os"
	"testing"
)

func TestFileSet_Versioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.veri", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.veri")
	if !exists || latestID != id1 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latestID, exists, id1)
	}

	id2 := fs.Add("test.veri", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}

	latestID, exists = fs.GetLatest("test.veri")
	if !exists || latestID != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latestID, exists, id2)
	}

	// The earlier FileID must still resolve to its original content.
	file1 := fs.Get(id1)
	if string(file1.Content) != "hello world" {
		t.Errorf("first file content = %q, want %q", file1.Content, "hello world")
	}
	file2 := fs.Get(id2)
	if string(file2.Content) != "hello universe" {
		t.Errorf("second file content = %q, want %q", file2.Content, "hello universe")
	}

	if file1.Path != "test.veri" || file2.Path != "test.veri" {
		t.Error("expected both versions to share the same path")
	}
}

func TestFileSet_AddVirtualLineIndex(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.veri", []byte("a\nb\n"))
	file := fs.Get(id)

	want := []uint32{1, 3}
	if len(file.LineIdx) != len(want) {
		t.Fatalf("LineIdx length = %d, want %d", len(file.LineIdx), len(want))
	}
	for i, v := range want {
		if file.LineIdx[i] != v {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], v)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestFileSet_CRLFNormalization(t *testing.T) {
	original := []byte("a\r\nb\r\n")
	normalized, changed := normalizeCRLF(original)
	if !changed {
		t.Error("expected CRLF normalization to be detected")
	}
	if want := "a\nb\n"; string(normalized) != want {
		t.Errorf("normalized content = %q, want %q", normalized, want)
	}
}

func TestFileSet_BOMRemoval(t *testing.T) {
	bomContent := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	withoutBOM, hadBOM := removeBOM(bomContent)
	if !hadBOM {
		t.Error("expected BOM to be detected")
	}
	if want := "x\n"; string(withoutBOM) != want {
		t.Errorf("content without BOM = %q, want %q", withoutBOM, want)
	}
}

func TestFileSet_ResolveUTF8(t *testing.T) {
	fs := NewFileSet()
	// "α\n": the Greek letter alpha encodes as 2 bytes, followed by a 1-byte newline.
	content := []byte("α\n")
	id := fs.AddVirtual("test.veri", content)

	span := Span{File: id, Start: 0, End: 1}
	start, end := fs.Resolve(span)

	if want := (LineCol{Line: 1, Col: 1}); start != want {
		t.Errorf("start = %+v, want %+v", start, want)
	}
	if want := (LineCol{Line: 1, Col: 2}); end != want {
		t.Errorf("end = %+v, want %+v", end, want)
	}
}

func TestFileSet_EdgeCases(t *testing.T) {
	fs := NewFileSet()

	empty := fs.Get(fs.AddVirtual("empty.veri", []byte{}))
	if len(empty.LineIdx) != 0 {
		t.Errorf("empty file LineIdx length = %d, want 0", len(empty.LineIdx))
	}

	noNewlines := fs.Get(fs.AddVirtual("flat.veri", []byte("hello")))
	if len(noNewlines.LineIdx) != 0 {
		t.Errorf("no-newline file LineIdx length = %d, want 0", len(noNewlines.LineIdx))
	}

	onlyNewline := fs.Get(fs.AddVirtual("nl.veri", []byte("\n")))
	if len(onlyNewline.LineIdx) != 1 || onlyNewline.LineIdx[0] != 0 {
		t.Errorf("LineIdx = %v, want [0]", onlyNewline.LineIdx)
	}
}

func TestFileSet_LoadNormalizesCRLFAndBOM(t *testing.T) {
	tmp := t.TempDir()
	path := tmp + "/crlf.veri"
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb\r\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)

	if want := "a\nb\n"; string(file.Content) != want {
		t.Errorf("content = %q, want %q", file.Content, want)
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag to be set")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag to be set")
	}
	if file.LineIdx[0] != 1 || file.LineIdx[1] != 3 {
		t.Errorf("LineIdx = %v, want [1 3]", file.LineIdx)
	}
}
