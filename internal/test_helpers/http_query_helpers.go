package helpers

import (
	"bytes"
	"io"
	"net/http"
	"testing"
)

func DoGet(url string, t *testing.T) (int, []byte) {
	return DoRequest(http.MethodGet, url, nil, t)
}

func DoHead(url string, t *testing.T) (int, []byte) {
	return DoRequest(http.MethodHead, url, nil, t)
}

func DoPost(url string, content []byte, t *testing.T) int {
	code, _ := DoRequest(http.MethodPost, url, content, t)
	return code
}

func DoRequest(method string, url string, content []byte, t *testing.T) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBuffer(content))
	if err != nil {
		t.Error(err)
		return 0, nil
	}
	if content != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return 0, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Error(err)
		return 0, nil
	}

	return resp.StatusCode, body
}
