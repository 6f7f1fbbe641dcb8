package rest

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontendHandler_ServesAsset(t *testing.T) {
	// Setup
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>home</html>"), 0o644)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('hi')"), 0o644)
	assert.NoError(t, err)
	handler := NewFrontendHandler(dir, "index.html")

	req := httptest.NewRequest("GET", "/app.js", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// Verify response
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "console.log('hi')", rr.Body.String())
}

func TestFrontendHandler_FallsBackToIndex(t *testing.T) {
	// Setup
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>home</html>"), 0o644)
	assert.NoError(t, err)
	handler := NewFrontendHandler(dir, "index.html")

	req := httptest.NewRequest("GET", "/some/client/route", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// Verify response
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<html>home</html>", rr.Body.String())
}
