package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/scottkirkwood/blobposter/scene"
)

// Load returns the parameters for style.
// Search order: customPath -> ~/.blobposter/<style>.yaml -> ./configs/<style>.yaml -> embedded default.
// Only a broken customPath is an error; the other locations are skipped when
// missing or unreadable. A file may switch the style itself, in which case it
// starts from the defaults of the style it names.
func Load(customPath string, style scene.Style) (scene.Params, error) {
	f, err := find(customPath, style)
	if err != nil {
		return Defaults(style), err
	}
	return f.Params(style), nil
}

// LoadAs is Load with style pinned: a style named in the file is ignored.
func LoadAs(customPath string, style scene.Style) (scene.Params, error) {
	f, err := find(customPath, style)
	if err != nil {
		return Defaults(style), err
	}
	f.Style = nil
	return f.Params(style), nil
}

// find returns the first parameter file in the search order, or an empty
// File when there is none.
func find(customPath string, style scene.Style) (File, error) {
	if customPath != "" {
		return ReadFile(customPath)
	}
	name := strings.ToLower(style.String()) + ".yaml"
	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		if f, err := ReadFile(path); err == nil {
			return f, nil
		}
	}
	return File{}, nil
}

// ReadFile decodes one parameter file. The extension picks the format.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	f, err := decode(data, filepath.Ext(path))
	if err != nil {
		return File{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return f, nil
}

func decode(data []byte, ext string) (File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return f, err
		}
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return f, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return f, fmt.Errorf("unknown keys %v", undecoded)
		}
	default:
		return f, fmt.Errorf("unsupported config format %q (want .yaml or .toml)", ext)
	}
	return f, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blobposter", filename)
}
