package pathext

import (
	golang_path "path"
	"slices"
	"strings"
)

type unixPath struct{}

const unixSeparator = "/"

func (p *unixPath) Join(elem ...string) string {
	return golang_path.Join(elem...)
}

func (p *unixPath) IsAbs(path string) bool {
	path = golang_path.Clean(path)
	return golang_path.IsAbs(path)
}

func (p *unixPath) IsRoot(path string) bool {
	path = golang_path.Clean(path)
	return golang_path.IsAbs(path) && golang_path.Dir(path) == path
}

func (p *unixPath) Contains(basePath, targetPath string) bool {
	basePath = golang_path.Clean(basePath)
	targetPath = golang_path.Clean(targetPath)

	for {
		if targetPath == basePath {
			return true
		}
		if p.IsRoot(targetPath) || targetPath == "." {
			return false
		}
		targetPath = golang_path.Dir(targetPath)
	}
}

func (p *unixPath) Components(path string) []string {
	if path == "" {
		return nil
	}

	var components []string
	if strings.HasPrefix(path, unixSeparator) {
		components = append(components, unixSeparator)
	}
	for _, segment := range strings.Split(path, unixSeparator) {
		if segment != "" {
			components = append(components, segment)
		}
	}
	return components
}

func (p *unixPath) FinalSegment(path string) (string, bool) {
	return finalSegment(path, unixSeparator)
}

func (p *unixPath) HasComponent(path, component string) bool {
	return slices.Contains(p.Components(path), component)
}

func (p *unixPath) EndsWithExtensions(path, suffix string) bool {
	segment, ok := p.FinalSegment(path)
	if !ok {
		return false
	}
	return endsWithExtensions(segment, suffix)
}

func (p *unixPath) StripExtensions(path string) (string, bool) {
	segment, ok := p.FinalSegment(path)
	if !ok {
		return "", false
	}
	return stripExtensions(segment), true
}

func NewUnixPath() Path {
	return &unixPath{}
}
