package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// parseHTML strips markup and returns the visible text, one node per line.
// Script, style, and head metadata are discarded.
func parseHTML(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "meta", "link", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in HTML")
	}
	return text, nil
}

// parseDocx reads word/document.xml from the archive and collects the text
// runs, with a line break per paragraph.
func parseDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document.xml: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("document.xml not found in DOCX archive")
	}
	defer docXML.Close()

	var b strings.Builder
	decoder := xml.NewDecoder(docXML)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}
	return text, nil
}

// parseRTF strips RTF control words, groups, and hex escapes, keeping the
// plain text. Destination groups like fonttbl and stylesheet are skipped.
func parseRTF(data []byte) (string, error) {
	content := string(data)
	if !strings.HasPrefix(content, `{\rtf`) {
		return "", fmt.Errorf("not an RTF document")
	}

	var b strings.Builder
	skipDepth := 0
	depth := 0
	i := 0
	for i < len(content) {
		c := content[i]
		switch c {
		case '{':
			depth++
			i++
		case '}':
			if skipDepth > 0 && depth <= skipDepth {
				skipDepth = 0
			}
			depth--
			i++
		case '\\':
			word, param, consumed := readControlWord(content[i:])
			i += consumed
			if skipDepth > 0 {
				continue
			}
			switch word {
			case "par", "line", "sect", "page":
				b.WriteString("\n")
			case "tab":
				b.WriteString("\t")
			case "'":
				// Hex escapes are Latin-1 code points.
				if v, err := strconv.ParseUint(param, 16, 8); err == nil {
					b.WriteRune(rune(v))
				}
			case "\\", "{", "}":
				b.WriteString(word)
			case "fonttbl", "stylesheet", "colortbl", "info", "pict", "*":
				skipDepth = depth
			}
		default:
			if skipDepth == 0 && c != '\n' && c != '\r' {
				b.WriteByte(c)
			}
			i++
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in RTF")
	}
	return text, nil
}

// readControlWord parses a control word or symbol starting at a backslash,
// returning the word, its parameter (hex digits for \'), and bytes consumed.
func readControlWord(s string) (string, string, int) {
	if len(s) < 2 {
		return "", "", len(s)
	}
	i := 1
	c := s[i]

	// Control symbols: a single non-letter character.
	if !isLetter(c) {
		if c == '\'' && len(s) >= 4 {
			return "'", s[2:4], 4
		}
		if c == '\\' || c == '{' || c == '}' {
			// Escaped literal: caller writes it via the returned word.
			return string(c), "", 2
		}
		return string(c), "", 2
	}

	start := i
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	word := s[start:i]

	// Optional numeric parameter.
	for i < len(s) && (s[i] == '-' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	// A single trailing space is part of the control word.
	if i < len(s) && s[i] == ' ' {
		i++
	}
	return word, "", i
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
