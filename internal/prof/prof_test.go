package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCPUProfileWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.prof")
	if err := StartCPU(path); err != nil {
		t.Fatalf("StartCPU: %v", err)
	}
	StopCPU()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("profile missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("profile file is empty")
	}
}

func TestTraceWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")
	if err := StartTrace(path); err != nil {
		t.Fatalf("StartTrace: %v", err)
	}
	StopTrace()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("trace missing: %v", err)
	}
}

func TestWriteMem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem.prof")
	if err := WriteMem(path); err != nil {
		t.Fatalf("WriteMem: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("heap profile missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("heap profile is empty")
	}
}
