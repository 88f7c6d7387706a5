// Package hcl_adapter implements the config.Loader interface for HCL
// session profiles.
package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sumloop/internal/config"
	"github.com/vk/sumloop/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL profile loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes all recognized top-level blocks from a profile file.
type fileRoot struct {
	Sessions []*sessionBlock `hcl:"session,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

// sessionBlock holds the raw expressions of a `session` block. Attributes
// are kept as expressions so profiles can reference the `defaults` object.
type sessionBlock struct {
	Iterations hcl.Expression `hcl:"iterations,optional"`
	Attempts   hcl.Expression `hcl:"attempts,optional"`
	Prompt     hcl.Expression `hcl:"prompt,optional"`
}

// Load orchestrates the profile loading process. Paths may name single
// .hcl files or directories of them; session blocks in later files
// override earlier ones, starting from the built-in defaults.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL profile loader started.", "path_count", len(paths))

	model := &config.Model{Profile: config.DefaultProfile()}

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered profile files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Sessions {
			if err := applySession(model.Profile, block, evalCtx); err != nil {
				return nil, fmt.Errorf("invalid session block in %s: %w", file, err)
			}
		}
	}

	logger.Debug("Profile loading complete.",
		"iterations", model.Profile.Iterations,
		"attempts", model.Profile.Attempts,
	)
	return model, nil
}

// newEvalContext builds the evaluation context available to profile
// expressions. The `defaults` object exposes the built-in session
// parameters so profiles can say e.g. `attempts = defaults.attempts`.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"iterations": cty.NumberIntVal(config.DefaultIterations),
				"attempts":   cty.NumberIntVal(config.DefaultAttempts),
				"prompt":     cty.StringVal(config.DefaultPrompt),
			}),
		},
	}
}

// applySession evaluates one session block and merges it into the profile.
func applySession(p *config.Profile, block *sessionBlock, evalCtx *hcl.EvalContext) error {
	if block.Iterations != nil {
		n, err := evalCount(block.Iterations, "iterations", evalCtx)
		if err != nil {
			return err
		}
		p.Iterations = n
	}
	if block.Attempts != nil {
		n, err := evalCount(block.Attempts, "attempts", evalCtx)
		if err != nil {
			return err
		}
		p.Attempts = n
	}
	if block.Prompt != nil {
		val, diags := block.Prompt.Value(evalCtx)
		if diags.HasErrors() {
			return diags
		}
		if val.Type() != cty.String {
			return fmt.Errorf("prompt must be a string, but got %s", val.Type().FriendlyName())
		}
		p.Prompt = val.AsString()
	}
	return nil
}

// evalCount evaluates a numeric session attribute and rejects anything
// that is not a non-negative whole number.
func evalCount(expr hcl.Expression, name string, evalCtx *hcl.EvalContext) (int, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.Type() != cty.Number {
		return 0, fmt.Errorf("%s must be a number, but got %s", name, val.Type().FriendlyName())
	}
	n, _ := val.AsBigFloat().Int64()
	if n < 0 {
		return 0, fmt.Errorf("%s cannot be negative, got %d", name, n)
	}
	return int(n), nil
}

// findAllHCLFiles walks all given paths and returns a flat list of the
// .hcl files found. A path that does not exist is an error: profile paths
// are always user-supplied here.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing profile path %s: %w", path, err)
		}

		if info.IsDir() {
			err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && filepath.Ext(p) == ".hcl" {
					if _, wasSeen := seen[p]; !wasSeen {
						allFiles = append(allFiles, p)
						seen[p] = struct{}{}
					}
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		if _, wasSeen := seen[path]; !wasSeen {
			allFiles = append(allFiles, path)
			seen[path] = struct{}{}
		}
	}

	return allFiles, nil
}
