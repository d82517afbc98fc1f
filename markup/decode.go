package markup

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// DecodeOptions control entity decoding of raw input.
type DecodeOptions struct {
	NormalizeSpaces bool              // map U+00A0, U+2007 and U+202F to U+0020
	DecodeTwice     bool              // decode a second time if '&' remains
	Entities        map[string]string // additional named entities, without '&' and ';'
}

// DefaultDecodeOptions decodes twice and leaves no-break spaces intact.
var DefaultDecodeOptions = DecodeOptions{DecodeTwice: true}

var spaceNormalizer = strings.NewReplacer(
	"\u00a0", " ", // no-break space
	"\u2007", " ", // figure space
	"\u202f", " ", // narrow no-break space
)

// Decode replaces character references in s. User-supplied entities are
// resolved first, then the full set of HTML5 named and numeric references.
//
// Input like "&amp;nbsp;" is frequent in content which has been escaped
// twice. With DecodeTwice set, such input is resolved to a no-break space.
func Decode(s string, opts DecodeOptions) string {
	custom := customReplacer(opts.Entities)
	once := func(s string) string {
		if custom != nil {
			s = custom.Replace(s)
		}
		s = html.UnescapeString(s)
		if opts.NormalizeSpaces {
			s = spaceNormalizer.Replace(s)
		}
		return s
	}
	result := once(s)
	if opts.DecodeTwice && strings.IndexByte(result, '&') >= 0 {
		tracer().Debugf("decoding twice")
		result = once(result)
	}
	return result
}

func customReplacer(entities map[string]string) *strings.Replacer {
	if len(entities) == 0 {
		return nil
	}
	names := make([]string, 0, len(entities))
	for name := range entities {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		entity := strings.Trim(name, "&;")
		if entity == "" {
			continue
		}
		pairs = append(pairs, "&"+entity+";", entities[name])
	}
	if len(pairs) == 0 {
		return nil
	}
	return strings.NewReplacer(pairs...)
}
