//go:build windows

// This implementation only works when compiled for Windows
// as this uses the `path/filepath` which is platform dependent

package pathext

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

type windowsPath struct {
}

// windowsNamedPipesExp matches a named pipe path (starts with `\\.\pipe\`, possibly with / instead of \)
var windowsNamedPipe = regexp.MustCompile(`(?i)^[/\\]{2}\.[/\\]pipe[/\\][^:*?"<>|\r\n]+$`)

const windowsSeparators = `\/`

func (p *windowsPath) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (p *windowsPath) IsAbs(path string) bool {
	if windowsNamedPipe.MatchString(path) {
		return true
	}

	path = filepath.Clean(path)
	return filepath.IsAbs(path)
}

func (p *windowsPath) IsRoot(path string) bool {
	if windowsNamedPipe.MatchString(path) {
		return false
	}

	path = filepath.Clean(path)
	return filepath.IsAbs(path) && filepath.Dir(path) == path
}

func (p *windowsPath) Contains(basePath, targetPath string) bool {
	// we use `filepath.Rel` as this perform OS-specific comparison
	// and this set of functions is compiled using OS-specific golang filepath
	relativePath, err := filepath.Rel(basePath, targetPath)
	if err != nil {
		return false
	}

	// if it starts with `..` it tries to escape the path
	if strings.HasPrefix(relativePath, "..") {
		return false
	}

	return true
}

func (p *windowsPath) Components(path string) []string {
	if path == "" {
		return nil
	}

	var components []string
	volume := filepath.VolumeName(path)
	rest := path[len(volume):]
	if volume != "" {
		components = append(components, volume)
	}
	if len(rest) > 0 && isWindowsSeparator(rest[0]) {
		components = append(components, `\`)
	}
	for _, segment := range strings.FieldsFunc(rest, func(r rune) bool {
		return r == '\\' || r == '/'
	}) {
		components = append(components, segment)
	}
	return components
}

func (p *windowsPath) FinalSegment(path string) (string, bool) {
	// the volume name ("c:", `\\server\share`) is never a filename
	return finalSegment(path[len(filepath.VolumeName(path)):], windowsSeparators)
}

func (p *windowsPath) HasComponent(path, component string) bool {
	return slices.Contains(p.Components(path), component)
}

func (p *windowsPath) EndsWithExtensions(path, suffix string) bool {
	segment, ok := p.FinalSegment(path)
	if !ok {
		return false
	}
	return endsWithExtensions(segment, suffix)
}

func (p *windowsPath) StripExtensions(path string) (string, bool) {
	segment, ok := p.FinalSegment(path)
	if !ok {
		return "", false
	}
	return stripExtensions(segment), true
}

func isWindowsSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

//revive:disable:unexported-return
func NewWindowsPath() *windowsPath {
	return &windowsPath{}
}
