package rewrite

import (
	"github.com/npillmayer/dirfix/markup"
	"github.com/npillmayer/dirfix/tree"
)

type config struct {
	decode   markup.DecodeOptions
	tree     tree.Config
	fileMode bool
}

func defaultConfig() *config {
	return &config{
		decode: markup.DefaultDecodeOptions,
		tree:   tree.Config{MaxDepth: tree.DefaultMaxDepth},
	}
}

// Option configures a rewrite.
type Option func(*config)

// VoidTags adds tags to the set of void elements. Void elements never get
// a dir attribute and never break an open span.
func VoidTags(tags ...string) Option {
	return func(cfg *config) {
		cfg.tree.VoidTags = append(cfg.tree.VoidTags, tags...)
	}
}

// TrimSpaces collapses runs of whitespace within text. Default is false.
func TrimSpaces(b bool) Option {
	return func(cfg *config) {
		cfg.tree.TrimSpaces = b
	}
}

// NormalizeSpaces turns no-break spaces of the input into regular spaces.
// Default is false.
func NormalizeSpaces(b bool) Option {
	return func(cfg *config) {
		cfg.decode.NormalizeSpaces = b
	}
}

// DecodeTwice decodes the input a second time if it contains character
// references after the first pass. Default is true.
func DecodeTwice(b bool) Option {
	return func(cfg *config) {
		cfg.decode.DecodeTwice = b
	}
}

// Entities adds named character references, mapping names (without '&'
// and ';') to replacement text.
func Entities(entities map[string]string) Option {
	return func(cfg *config) {
		if cfg.decode.Entities == nil {
			cfg.decode.Entities = make(map[string]string, len(entities))
		}
		for name, value := range entities {
			cfg.decode.Entities[name] = value
		}
	}
}

// FileMode treats the input as a complete document. Only the content of
// its body is rewritten and returned.
func FileMode(b bool) Option {
	return func(cfg *config) {
		cfg.fileMode = b
	}
}

// MaxDepth limits the nesting depth of the input.
func MaxDepth(depth int) Option {
	return func(cfg *config) {
		cfg.tree.MaxDepth = depth
	}
}
