package treefile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/ldaggo/internal/ctxlog"
	"github.com/vk/ldaggo/internal/hclutil"
	"github.com/vk/ldaggo/internal/ldag"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither HCL nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported tree file format")
	// ErrNoTree is returned when a file does not describe a tree.
	ErrNoTree = errors.New("no tree defined")
)

// Document is a tree loaded from a description file.
type Document struct {
	// Name is the tree's label in the file.
	Name string
	// StartPosition is the file's suggested starting QH position, if any.
	StartPosition *int
	// Root is the root of the tree. It is nil for an empty tree.
	Root *ldag.Node
}

// Loader reads tree description files.
type Loader struct{}

// NewLoader creates a new tree file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path and decodes it according to its extension.
func (l *Loader) Load(ctx context.Context, path string) (*Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Tree loader started.", "path", path)

	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading tree file %s: %w", path, err)
	}

	doc, err := decode(ctx, path, src)
	if err != nil {
		return nil, err
	}
	logger.Debug("Tree loaded.", "name", doc.Name, "nodes", ldag.CountNodes(doc.Root))
	return doc, nil
}

type decodeFunc func(ctx context.Context, filename string, src []byte) (*Document, error)

func decoderFor(path string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return DecodeHCL, nil
	case ".yaml", ".yml":
		return DecodeYAML, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected .hcl, .yaml or .yml)", ErrUnsupportedFormat, path)
	}
}

// DecodeHCL decodes an HCL tree description held in src.
func DecodeHCL(ctx context.Context, filename string, src []byte) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	block, diags := hclutil.FindUniqueBlock(content.Blocks, "tree")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if block == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoTree, filename)
	}
	if strings.TrimSpace(block.Labels[0]) == "" {
		diag := hclutil.LabelError(block, 0, "Invalid tree name", "A tree name must not be empty.")
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, hcl.Diagnostics{diag})
	}

	var spec treeSpec
	diags = gohcl.DecodeBody(block.Body, nil, &spec)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	spec.Name = block.Labels[0]

	return translate(ctx, &spec)
}

// DecodeYAML decodes a YAML tree description held in src.
func DecodeYAML(ctx context.Context, filename string, src []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var spec treeSpec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w in %s", ErrNoTree, filename)
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}
	if strings.TrimSpace(spec.Name) == "" {
		return nil, fmt.Errorf("failed to decode YAML file %s: tree name must not be empty", filename)
	}
	if err := dec.Decode(&yaml.Node{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: only one tree document is allowed", filename)
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	return translate(ctx, &spec)
}
