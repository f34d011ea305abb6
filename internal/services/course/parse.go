package course

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/golfscore/internal/model"
)

// Parse decodes courses from a YAML or JSON document. The format is picked
// from the file extension. YAML files may hold several courses separated by
// "---"; JSON files hold one course object or an array of them.
func Parse(name string, data []byte) ([]model.Course, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	}
	return nil, fmt.Errorf("%s: unsupported course file type", name)
}

func parseJSON(data []byte) ([]model.Course, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var courses []model.Course
		if err := json.Unmarshal(data, &courses); err != nil {
			return nil, err
		}
		return courses, nil
	}
	var c model.Course
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return []model.Course{c}, nil
}

func parseYAML(data []byte) ([]model.Course, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var courses []model.Course
	for {
		var c model.Course
		err := dec.Decode(&c)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, nil
}
