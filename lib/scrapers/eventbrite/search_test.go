package eventbrite

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const searchPageHtml = `<!DOCTYPE html>
<html>
<head>
<script>var unrelated = 1;</script>
<script>
  window.__i18n__ = {"locale": "en_US"};
  window.__SERVER_DATA__ = {"search_data": {"events": {"results": [
    {"id": "1", "name": "Classic Car Show", "summary": "a show of classic cars"},
    {"id": "2", "name": "Harbor Tour"}
  ]}}};
  window.__REACT_QUERY_STATE__ = {};
</script>
</head>
<body><div>results</div></body>
</html>`

const emptyPageHtml = `<!DOCTYPE html>
<html>
<head></head>
<body><h1>Nothing matched your search, but you might like these options.</h1></body>
</html>`

func TestExtractSearchResults(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(searchPageHtml))
	require.NoError(t, err)

	results, err := extractSearchResults(doc)
	require.NoError(t, err)

	require.Len(t, results, 2)
	require.Equal(t, "1", results[0]["id"])
	require.Equal(t, "Classic Car Show", results[0]["name"])
	require.Equal(t, "a show of classic cars", results[0]["summary"])
	require.Equal(t, "Harbor Tour", results[1]["name"])
}

func TestExtractSearchResultsMissingBlock(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(emptyPageHtml))
	require.NoError(t, err)

	_, err = extractSearchResults(doc)
	require.Error(t, err)
}

func TestIsLastPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(emptyPageHtml))
	require.NoError(t, err)
	require.True(t, isLastPage(doc))

	doc, err = goquery.NewDocumentFromReader(strings.NewReader(searchPageHtml))
	require.NoError(t, err)
	require.False(t, isLastPage(doc))
}
