package normalize

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// XML removes whitespace-only text between elements and writes the document
// back without indentation. Empty elements are written self-closed.
type XML struct{}

func (XML) Name() string { return "xml" }

func (XML) Normalize(text string) (string, error) {
	d := xml.NewDecoder(strings.NewReader(text))
	d.Strict = true
	// Content is already decoded; declared encodings are informational.
	d.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var (
		b       strings.Builder
		stack   []xml.Name
		roots   int
		pending bool // start tag written without its closing '>'
	)

	closePending := func() {
		if pending {
			b.WriteByte('>')
			pending = false
		}
	}

	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			closePending()
			if len(stack) == 0 {
				roots++
				if roots > 1 {
					return "", errors.New("multiple root elements")
				}
			}
			stack = append(stack, t.Name)
			b.WriteByte('<')
			b.WriteString(qualified(t.Name))
			for _, attr := range t.Attr {
				b.WriteByte(' ')
				b.WriteString(qualified(attr.Name))
				b.WriteString(`="`)
				b.WriteString(attrEscaper.Replace(attr.Value))
				b.WriteByte('"')
			}
			pending = true

		case xml.EndElement:
			if len(stack) == 0 {
				return "", fmt.Errorf("unexpected end element </%s>", qualified(t.Name))
			}
			open := stack[len(stack)-1]
			if open != t.Name {
				return "", fmt.Errorf("element <%s> closed by </%s>", qualified(open), qualified(t.Name))
			}
			stack = stack[:len(stack)-1]
			if pending {
				b.WriteString("/>")
				pending = false
				continue
			}
			b.WriteString("</")
			b.WriteString(qualified(t.Name))
			b.WriteByte('>')

		case xml.CharData:
			if strings.TrimSpace(string(t)) == "" {
				continue
			}
			if len(stack) == 0 {
				return "", errors.New("text outside the root element")
			}
			closePending()
			b.WriteString(textEscaper.Replace(string(t)))

		case xml.Comment:
			closePending()
			b.WriteString("<!--")
			b.Write(t)
			b.WriteString("-->")

		case xml.ProcInst:
			closePending()
			b.WriteString("<?")
			b.WriteString(t.Target)
			if len(t.Inst) > 0 {
				b.WriteByte(' ')
				b.Write(t.Inst)
			}
			b.WriteString("?>")

		case xml.Directive:
			closePending()
			b.WriteString("<!")
			b.Write(t)
			b.WriteByte('>')
		}
	}

	if len(stack) > 0 {
		return "", fmt.Errorf("element <%s> is never closed", qualified(stack[len(stack)-1]))
	}
	if roots == 0 {
		return "", errors.New("no root element")
	}
	return b.String(), nil
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;", "\n", "&#xA;", "\r", "&#xD;", "\t", "&#x9;")
)
