// Package runtimegen implements C5: assembling the minimal runtime library
// a transform run actually needs, from the Used-Helper Set's dependency
// closure, and writing it out atomically.
package runtimegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/registry"
)

const generatedFileName = "kinda_runtime.py"

// EmitRuntime computes the dependency closure of usedHelpers, concatenates
// the preamble and each construct's body in topological order, and writes
// the result to <outDir>/kinda_runtime.py. The write is atomic: the file is
// built in a sibling temp file in the same directory, then renamed into
// place, so a reader never observes a half-written runtime. Given the same
// usedHelpers, the output is byte-identical across calls — no timestamps or
// other nondeterminism are embedded. useComposition and maxEventuallyIterations
// are threaded from pkg/config so the emitted runtime's USE_COMPOSITION_ISH
// and MAX_EVENTUALLY_ITERATIONS match the run that produced it.
func EmitRuntime(usedHelpers []string, outDir string, useComposition bool, maxEventuallyIterations int) (string, error) {
	rendered, err := Render(usedHelpers, useComposition, maxEventuallyIterations)
	if err != nil {
		return "", err
	}
	content := rendered + "\n"

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("runtimegen: create output dir %s: %w", outDir, err)
	}

	finalPath := filepath.Join(outDir, generatedFileName)

	tmp, err := os.CreateTemp(outDir, ".kinda_runtime-*.py.tmp")
	if err != nil {
		return "", fmt.Errorf("runtimegen: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("runtimegen: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("runtimegen: close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		return "", fmt.Errorf("runtimegen: rename into place: %w", err)
	}

	return finalPath, nil
}

// Render returns the runtime source EmitRuntime would write, without
// touching the filesystem — used by EmitRuntime and by tests to inspect the
// assembled helper set.
func Render(usedHelpers []string, useComposition bool, maxEventuallyIterations int) (string, error) {
	closure, err := registry.DependencyClosure(usedHelpers)
	if err != nil {
		return "", fmt.Errorf("runtimegen: resolve dependency closure: %w", err)
	}
	var b strings.Builder
	b.WriteString(registry.Preamble(useComposition, maxEventuallyIterations))
	b.WriteString("\n\n")
	for i, name := range closure {
		d, err := registry.Get(name)
		if err != nil {
			return "", fmt.Errorf("runtimegen: %w", err)
		}
		b.WriteString(strings.TrimRight(d.Body, "\n"))
		if i != len(closure)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String(), nil
}
