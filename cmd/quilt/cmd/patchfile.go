package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/quiltlabs/quilt/pkg/tensor"
	yaml "gopkg.in/yaml.v2"
)

// patchFile is the on-disk form of a patch: named label subsets plus
// the row-major cell values.
type patchFile struct {
	Axes []struct {
		Name   string  `yaml:"name"`
		Labels []int64 `yaml:"labels"`
	} `yaml:"axes"`
	Content []float64 `yaml:"content"`
}

func readPatchFile(path string) (*tensor.Patch, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf patchFile
	if err := yaml.Unmarshal(buf, &pf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	axes := make([]tensor.Axis, 0, len(pf.Axes))
	for _, ax := range pf.Axes {
		sub, err := tensor.NewSubset(ax.Name, ax.Labels)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		axes = append(axes, sub)
	}
	p, err := tensor.NewPatch(axes, pf.Content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func writePatchFile(w io.Writer, p *tensor.Patch) error {
	var pf patchFile
	axes, content := p.Export()
	for _, ax := range axes {
		pf.Axes = append(pf.Axes, struct {
			Name   string  `yaml:"name"`
			Labels []int64 `yaml:"labels"`
		}{Name: ax.Name, Labels: ax.Labels})
	}
	pf.Content = content
	buf, err := yaml.Marshal(pf)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// parseSelections maps --select arguments onto axis windows. Accepted
// forms: axis=all, axis=1,2,3 and axis=2..5 (inclusive).
func parseSelections(specs []string) (map[string]tensor.Selection, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make(map[string]tensor.Selection, len(specs))
	for _, spec := range specs {
		name, expr, ok := strings.Cut(spec, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("selection %q: want axis=1,2,3 or axis=2..5 or axis=all", spec)
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("axis %q selected twice", name)
		}
		switch {
		case expr == "all":
			out[name] = tensor.All()
		case strings.Contains(expr, ".."):
			lo, hi, _ := strings.Cut(expr, "..")
			start, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("selection %q: bad range start: %w", spec, err)
			}
			end, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("selection %q: bad range end: %w", spec, err)
			}
			out[name] = tensor.Range(start, end)
		default:
			var labels []int64
			for _, field := range strings.Split(expr, ",") {
				field = strings.TrimSpace(field)
				if field == "" {
					continue
				}
				label, err := strconv.ParseInt(field, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("selection %q: bad label %q: %w", spec, field, err)
				}
				labels = append(labels, label)
			}
			out[name] = tensor.Labels(labels...)
		}
	}
	return out, nil
}
