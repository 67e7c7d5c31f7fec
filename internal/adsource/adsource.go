// Package adsource loads ad copy from local files (JSON, YAML, CSV) and from
// RSS or Atom feeds, normalizing it into models.Ad values.
package adsource

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/seenimoa/adlens/pkg/models"
)

// ErrUnsupportedFormat is returned for files whose extension is not
// .json, .yaml, .yml or .csv.
var ErrUnsupportedFormat = errors.New("unsupported ad file format")

// Format names accepted by Decode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// idNamespace scopes the name-based UUIDs generated for ads without an ID.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/seenimoa/adlens/ads"))

// LoadFile reads ads from path, choosing the decoder by file extension.
func LoadFile(path string) ([]models.Ad, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ad file: %w", err)
	}
	defer f.Close()

	ads, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return ads, nil
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Decode reads ads in the given format from r and normalizes them.
func Decode(r io.Reader, format string) ([]models.Ad, error) {
	var (
		ads []models.Ad
		err error
	)
	switch format {
	case FormatJSON:
		ads, err = decodeJSON(r)
	case FormatYAML:
		ads, err = decodeYAML(r)
	case FormatCSV:
		ads, err = decodeCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return Normalize(ads), nil
}

// adList is the wrapped form {"ads": [...]} accepted next to a bare list.
type adList struct {
	Ads []models.Ad `json:"ads" yaml:"ads"`
}

func decodeJSON(r io.Reader) ([]models.Ad, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var ads []models.Ad
		if err := json.Unmarshal(data, &ads); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return ads, nil
	}
	var list adList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return list.Ads, nil
}

func decodeYAML(r io.Reader) ([]models.Ad, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(doc.Content) > 0 && doc.Content[0].Kind == yaml.SequenceNode {
		var ads []models.Ad
		if err := doc.Decode(&ads); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return ads, nil
	}
	var list adList
	if err := doc.Decode(&list); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return list.Ads, nil
}

// csvColumns maps recognized header names to ad fields.
var csvColumns = map[string]func(*models.Ad, string){
	"id":             func(a *models.Ad, v string) { a.ID = v },
	"primary_text":   func(a *models.Ad, v string) { a.PrimaryText = v },
	"headline":       func(a *models.Ad, v string) { a.Headline = v },
	"description":    func(a *models.Ad, v string) { a.Description = v },
	"call_to_action": func(a *models.Ad, v string) { a.CallToAction = v },
	"platform":       func(a *models.Ad, v string) { a.Platform = v },
	"url":            func(a *models.Ad, v string) { a.URL = v },
}

func decodeCSV(r io.Reader) ([]models.Ad, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	setters := make([]func(*models.Ad, string), len(header))
	known := 0
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
		if set, ok := csvColumns[name]; ok {
			setters[i] = set
			known++
		}
	}
	if known == 0 {
		return nil, fmt.Errorf("csv header %v has no ad columns", header)
	}

	var ads []models.Ad
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		var ad models.Ad
		for i, v := range row {
			if i < len(setters) && setters[i] != nil {
				setters[i](&ad, v)
			}
		}
		ads = append(ads, ad)
	}
	return ads, nil
}

// Normalize strips HTML from every text field and assigns a deterministic
// ID to ads that lack one. The same ad text always yields the same ID. Ads
// without any text are kept so callers get one record per submitted ad.
func Normalize(ads []models.Ad) []models.Ad {
	out := make([]models.Ad, 0, len(ads))
	for _, ad := range ads {
		ad.ID = strings.TrimSpace(ad.ID)
		ad.PrimaryText = StripHTML(ad.PrimaryText)
		ad.Headline = StripHTML(ad.Headline)
		ad.Description = StripHTML(ad.Description)
		ad.CallToAction = StripHTML(ad.CallToAction)
		ad.Platform = strings.TrimSpace(ad.Platform)
		ad.URL = strings.TrimSpace(ad.URL)

		if ad.ID == "" {
			ad.ID = uuid.NewSHA1(idNamespace, []byte(ad.Text())).String()
		}
		out = append(out, ad)
	}
	return out
}

// markup matches the start of an HTML tag or comment.
var markup = regexp.MustCompile(`<[a-zA-Z/!]`)

// StripHTML converts an HTML fragment to plain text. Line breaks survive:
// <br> and block elements end a line, runs of spaces collapse within each
// line and blank lines are dropped. Text without tags only has its
// entities decoded.
func StripHTML(s string) string {
	switch {
	case markup.MatchString(s):
		doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
		if err != nil {
			break
		}
		doc.Find("script, style").Remove()
		doc.Find("br").ReplaceWithHtml("\n")
		doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr").AppendHtml("\n")
		s = doc.Text()
	case strings.Contains(s, "&"):
		s = html.UnescapeString(s)
	}
	return collapseLines(s)
}

// collapseLines trims each line, collapses inner whitespace and drops empty
// lines.
func collapseLines(s string) string {
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	out := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
