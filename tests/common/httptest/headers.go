//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertAttachment checks the download headers of a file response.
func AssertAttachment(t *testing.T, w *httptest.ResponseRecorder, contentType, filenamePrefix string) {
	t.Helper()
	assert.Equal(t, contentType, w.Header().Get("Content-Type"))
	disposition := w.Header().Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, `attachment; filename="`+filenamePrefix),
		"unexpected Content-Disposition %q", disposition)
}
