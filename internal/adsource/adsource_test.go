package adsource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenimoa/adlens/internal/engine"
	"github.com/seenimoa/adlens/pkg/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ── Files ──

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json array", "ads.json", `[
			{"id": "a1", "primary_text": "Only 3 left!", "headline": "Sale"},
			{"id": "a2", "primary_text": "Join our community", "call_to_action": "Sign up"}
		]`},
		{"json wrapped", "ads.json", `{"ads": [
			{"id": "a1", "primary_text": "Only 3 left!", "headline": "Sale"},
			{"id": "a2", "primary_text": "Join our community", "call_to_action": "Sign up"}
		]}`},
		{"yaml list", "ads.yaml", `
- id: a1
  primary_text: Only 3 left!
  headline: Sale
- id: a2
  primary_text: Join our community
  call_to_action: Sign up
`},
		{"yaml wrapped", "ads.yml", `
ads:
  - id: a1
    primary_text: Only 3 left!
    headline: Sale
  - id: a2
    primary_text: Join our community
    call_to_action: Sign up
`},
		{"csv", "ads.csv", "id,primary_text,headline,description,call_to_action\n" +
			"a1,Only 3 left!,Sale,,\n" +
			"a2,Join our community,,,Sign up\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ads, err := LoadFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			require.Len(t, ads, 2)
			assert.Equal(t, models.Ad{ID: "a1", PrimaryText: "Only 3 left!", Headline: "Sale"}, ads[0])
			assert.Equal(t, models.Ad{ID: "a2", PrimaryText: "Join our community", CallToAction: "Sign up"}, ads[1])
		})
	}
}

func TestLoadFileUnsupported(t *testing.T) {
	_, err := LoadFile(writeFile(t, "ads.txt", "hello"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Decode(strings.NewReader("x"), "xml")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"id": `), FormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("colour,size\nred,9\n"), FormatCSV)
	assert.Error(t, err)
}

func TestCSVHeaderCaseAndOrder(t *testing.T) {
	in := "Headline, Primary_Text ,Platform\nBig news,Fresh styles every week,meta\n"
	ads, err := Decode(strings.NewReader(in), FormatCSV)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "Big news", ads[0].Headline)
	assert.Equal(t, "Fresh styles every week", ads[0].PrimaryText)
	assert.Equal(t, "meta", ads[0].Platform)
}

// ── Normalization ──

func TestNormalizeAssignsStableIDs(t *testing.T) {
	ads := Normalize([]models.Ad{
		{PrimaryText: "Fresh coffee daily"},
		{PrimaryText: "Fresh coffee daily"},
		{PrimaryText: "Something else"},
		{PrimaryText: "   "},
	})
	require.Len(t, ads, 4)
	assert.NotEmpty(t, ads[0].ID)
	assert.Equal(t, ads[0].ID, ads[1].ID)
	assert.NotEqual(t, ads[0].ID, ads[2].ID)
	assert.NotEmpty(t, ads[3].ID)
	assert.Empty(t, ads[3].Text())
}

func TestNormalizeKeepsLineBreaks(t *testing.T) {
	raw := models.Ad{
		ID:          "multi",
		PrimaryText: "Tired of frustrating awful hassles\nNow enjoy trusted guaranteed amazing results",
	}
	ads := Normalize([]models.Ad{raw})
	require.Len(t, ads, 1)
	assert.Equal(t, raw.PrimaryText, ads[0].PrimaryText)

	eng := engine.New()
	want := eng.AnalyzeAd(raw)
	got := eng.AnalyzeAd(ads[0])
	assert.Equal(t, models.ArcProblemSolution, want.Emotions.Arc)
	assert.Equal(t, want.Emotions.Arc, got.Emotions.Arc)
	assert.Equal(t, 2, got.Metadata.SentenceCount)
	assert.Equal(t, want.Metadata.SentenceCount, got.Metadata.SentenceCount)
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"<p>Only <b>3</b> left!</p>", "Only 3 left!"},
		{"Fish &amp; chips", "Fish & chips"},
		{"  plain\n  text  ", "plain\ntext"},
		{"one  two\r\n\n\tthree ", "one two\nthree"},
		{"<div>Hi<script>alert(1)</script></div>", "Hi"},
		{"<p>First line</p><p>Second line</p>", "First line\nSecond line"},
		{"Buy now<br>Save later", "Buy now\nSave later"},
		{"Save 3 < 5 times", "Save 3 < 5 times"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripHTML(tt.in), tt.in)
	}
}

// ── Feeds ──

const rssDoc = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Acme Ads</title>
<item><title>Summer Sale</title>
<description>&lt;p&gt;Only &lt;b&gt;3&lt;/b&gt; left!&lt;/p&gt;</description>
<link>https://acme.test/1</link><guid>ad-1</guid></item>
<item><title>New arrivals</title><description>Fresh styles every week.</description>
<link>https://acme.test/2</link></item>
</channel></rss>`

const atomDoc = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"><title>Acme</title>
<entry><title>Hello</title><id>urn:acme:1</id>
<content type="html">Big &lt;em&gt;savings&lt;/em&gt; today</content>
<link href="https://acme.test/a"/></entry>
</feed>`

func TestParseFeedStringRSS(t *testing.T) {
	ads, err := ParseFeedString(rssDoc)
	require.NoError(t, err)
	require.Len(t, ads, 2)

	assert.Equal(t, "ad-1", ads[0].ID)
	assert.Equal(t, "Summer Sale", ads[0].Headline)
	assert.Equal(t, "Only 3 left!", ads[0].PrimaryText)
	assert.Equal(t, "https://acme.test/1", ads[0].URL)
	assert.Equal(t, "rss", ads[0].Platform)
	assert.NotEmpty(t, ads[1].ID)
}

func TestParseFeedStringAtom(t *testing.T) {
	ads, err := ParseFeedString(atomDoc)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "urn:acme:1", ads[0].ID)
	assert.Equal(t, "Big savings today", ads[0].PrimaryText)
	assert.Equal(t, "atom", ads[0].Platform)
}

func TestParseFeedStringInvalid(t *testing.T) {
	_, err := ParseFeedString("not a feed")
	assert.Error(t, err)
}

func TestFeedReaderParseFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssDoc))
	}))
	defer srv.Close()

	ads, err := NewFeedReader(nil, nil).ParseFeed(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, ads, 2)
}

func TestFeedReaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFeedReader(nil, nil).ParseFeed(ctx, "http://127.0.0.1:1/feed")
	assert.Error(t, err)
}
