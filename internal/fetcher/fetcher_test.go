package fetcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArticle(t *testing.T) {
	html := `<html><head>
<meta property="og:title" content="부업 시장 동향">
<title>페이지 제목</title>
</head><body>
<nav>메뉴</nav>
<article>
<h1>본문 헤드라인</h1>
<p>첫 번째   문단입니다.</p>
<script>console.log("tracking")</script>
<p>두 번째 문단입니다.</p>
</article>
<footer>하단</footer>
</body></html>`

	art, err := Parse(strings.NewReader(html), "https://news.example.com/a/1")
	require.NoError(t, err)

	assert.Equal(t, "부업 시장 동향", art.Title)
	assert.Equal(t, "첫 번째 문단입니다.\n\n두 번째 문단입니다.", art.Content)
	assert.Equal(t, "https://news.example.com/a/1", art.SourceURL)
	assert.NotContains(t, art.Content, "tracking")
}

func TestParseTitleFallbacks(t *testing.T) {
	html := `<html><body><main><h1>H1 제목</h1><p>본문</p></main></body></html>`
	art, err := Parse(strings.NewReader(html), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "H1 제목", art.Title)

	html = `<html><head><title>타이틀 태그</title></head><body><p>본문</p></body></html>`
	art, err = Parse(strings.NewReader(html), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "타이틀 태그", art.Title)
}

func TestParseNoTitle(t *testing.T) {
	_, err := Parse(strings.NewReader("<html><body><p>본문만</p></body></html>"), "https://example.com")
	require.Error(t, err)
}

func TestParseNoContent(t *testing.T) {
	_, err := Parse(strings.NewReader("<html><body><h1>제목만</h1></body></html>"), "https://example.com")
	require.Error(t, err)
}

func TestFetchRejectsScheme(t *testing.T) {
	_, err := Fetch("ftp://example.com/file", "test-agent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scheme")
}
