package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/log"
)

var logger = log.New("scene")

// Scene source types
const (
	TypeBuiltin = "builtin"
	TypeFile    = "file"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Name or path used to load the scene
	Name        string // Display name
	Description string // Optional description
	Type        string // TypeBuiltin or TypeFile
	FilePath    string // Path to the scene file (file type only)
}

// sceneHeader holds the metadata keys of a scene file
type sceneHeader struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ListBuiltinScenes returns metadata for every built-in scene
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, name := range BuiltinNames() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			Name:        titleCase(name),
			Description: builtinScenes[name].description,
			Type:        TypeBuiltin,
		})
	}
	return scenes
}

// ListFileScenes scans dir for *.yaml and *.yml scene files. A missing
// directory yields an empty list.
func ListFileScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan scenes directory")
		}
		files = append(files, matches...)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			logger.Warningf("failed to parse metadata for %s: %v", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name and description keys of a scene file,
// falling back to a title made from the file name
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Type:     TypeFile,
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, errors.Wrap(err, "read scene file")
	}

	var header sceneHeader
	if err := yaml.Unmarshal(data, &header); err != nil {
		return info, errors.Wrap(err, "parse scene yaml")
	}
	if header.Name != "" {
		info.Name = header.Name
	}
	info.Description = header.Description

	return info, nil
}

// ListAllScenes returns built-in scenes followed by the scene files in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	fileScenes, err := ListFileScenes(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scene files")
	}
	return append(ListBuiltinScenes(), fileScenes...), nil
}

// Load resolves a built-in scene name or a path to a scene file
func Load(nameOrPath string, sampler core.Sampler) (*Scene, error) {
	if _, ok := builtinScenes[nameOrPath]; ok {
		return NewBuiltin(nameOrPath, sampler)
	}

	ext := strings.ToLower(filepath.Ext(nameOrPath))
	if ext == ".yaml" || ext == ".yml" {
		return LoadFile(nameOrPath)
	}

	return nil, errors.Wrapf(ErrUnknownScene, "%q is neither a built-in scene nor a scene file", nameOrPath)
}

// titleCase converts a filename-style string to title case
// e.g., "random-spheres" -> "Random Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
