package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// ModuleResolver decides whether an absolute path already resolves to a module file.
type ModuleResolver interface {
	Resolve(absolutePath string) bool
}

// ResolverFunc adapts a plain function to ModuleResolver.
type ResolverFunc func(absolutePath string) bool

func (f ResolverFunc) Resolve(absolutePath string) bool {
	return f(absolutePath)
}

var nodeResolveExtensions = []string{".js", ".json", ".node"}

// NodeResolver follows the file and directory rules Node applies to absolute
// require() requests.
type NodeResolver struct {
	Extensions []string
}

// NewNodeResolver returns a resolver trying Node's default extensions followed by
// extra, which may be given with or without the leading dot.
func NewNodeResolver(extra ...string) *NodeResolver {
	exts := make([]string, 0, len(nodeResolveExtensions)+len(extra))
	seen := make(map[string]bool, cap(exts))
	for _, ext := range append(append([]string{}, nodeResolveExtensions...), extra...) {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		exts = append(exts, ext)
	}
	return &NodeResolver{Extensions: exts}
}

func (r *NodeResolver) Resolve(absolutePath string) bool {
	if r.resolveAsFile(absolutePath) {
		return true
	}
	return r.resolveAsDirectory(absolutePath)
}

func (r *NodeResolver) resolveAsFile(modulePath string) bool {
	if isRegularFile(modulePath) {
		return true
	}
	for _, ext := range r.Extensions {
		if isRegularFile(modulePath + ext) {
			return true
		}
	}
	return false
}

func (r *NodeResolver) resolveAsDirectory(dirPath string) bool {
	if !isDirectory(dirPath) {
		return false
	}

	if main := readPackageMain(dirPath); main != "" {
		mainPath := filepath.Join(dirPath, main)
		if r.resolveAsFile(mainPath) || r.resolveIndex(mainPath) {
			return true
		}
	}

	return r.resolveIndex(dirPath)
}

func (r *NodeResolver) resolveIndex(dirPath string) bool {
	for _, ext := range r.Extensions {
		if isRegularFile(filepath.Join(dirPath, "index"+ext)) {
			return true
		}
	}
	return false
}

func readPackageMain(dirPath string) string {
	content, err := os.ReadFile(filepath.Join(dirPath, "package.json"))
	if err != nil {
		return ""
	}
	var pkgJson struct {
		Main string `json:"main"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(content), &pkgJson); err != nil {
		return ""
	}
	return pkgJson.Main
}

func isRegularFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

func isDirectory(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
