package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<!DOCTYPE html>
<html>
<head><title>Job</title><script>var x = 1;</script></head>
<body>
	<nav>Home | Jobs | About</nav>
	<div class="job-description">
		<h1>Senior Backend Engineer</h1>
		<p>Requirements:</p>
		<ul>
			<li>5+ years of Go</li>
			<li>Experience with PostgreSQL and Kubernetes</li>
		</ul>
	</div>
	<footer>Copyright 2026</footer>
</body>
</html>`

func TestJobPosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	text, err := JobPosting(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Backend Engineer")
	assert.Contains(t, text, "5+ years of Go")
	assert.NotContains(t, text, "Home | Jobs", "nav noise must be stripped")
	assert.NotContains(t, text, "Copyright", "footer noise must be stripped")
	assert.NotContains(t, text, "var x", "scripts must be stripped")
}

func TestJobPosting_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := JobPosting(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobPosting_InvalidURL(t *testing.T) {
	_, err := JobPosting(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><p>plain page</p></body></html>`, jobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "plain page", text)
}
