package normalize

// Classifier picks the normalizer for a file extension.
//
// Extension sets may overlap. Markup wins over object notation, which wins
// over source code; the first set containing the extension decides, even
// when its compaction is switched off.
type Classifier struct {
	XMLExts     map[string]struct{}
	JSONExts    map[string]struct{}
	CSharpExts  map[string]struct{}
	CompactXML  bool
	CompactJSON bool
}

// Classify returns the normalizer for ext (lowercase, with leading dot) or
// nil when content should pass through unchanged.
func (c *Classifier) Classify(ext string) Normalizer {
	if _, ok := c.XMLExts[ext]; ok {
		if c.CompactXML {
			return XML{}
		}
		return nil
	}
	if _, ok := c.JSONExts[ext]; ok {
		if c.CompactJSON {
			return JSON{}
		}
		return nil
	}
	if _, ok := c.CSharpExts[ext]; ok {
		return CSharp{}
	}
	return nil
}
