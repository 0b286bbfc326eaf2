package e2e

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// APIError surfaces non-2xx responses from either server.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

var ErrNotFound = errors.New("not found")

// BoardClient is a thin wrapper over the board's text/plain HTTP
// surface, giving e2e tests Go method calls instead of raw URLs.
type BoardClient struct {
	baseURL string
	http    *http.Client
}

func NewBoardClient(baseURL string) *BoardClient {
	return &BoardClient{baseURL: baseURL, http: http.DefaultClient}
}

func (c *BoardClient) Look(player string) (string, error) {
	return c.getText(fmt.Sprintf("/look/%s", url.PathEscape(player)))
}

func (c *BoardClient) Flip(player string, row, col int) (string, error) {
	return c.getText(fmt.Sprintf("/flip/%s/%d,%d", url.PathEscape(player), row, col))
}

func (c *BoardClient) Watch(player string) (string, error) {
	return c.getText(fmt.Sprintf("/watch/%s", url.PathEscape(player)))
}

func (c *BoardClient) Replace(player, old, newVal string) (string, error) {
	return c.getText(fmt.Sprintf("/replace/%s/%s/%s", url.PathEscape(player), url.PathEscape(old), url.PathEscape(newVal)))
}

func (c *BoardClient) getText(path string) (string, error) {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return string(body), nil
}

// KVClient wraps the leader's write/read JSON surface.
type KVClient struct {
	baseURL string
	http    *http.Client
}

func NewKVClient(baseURL string) *KVClient {
	return &KVClient{baseURL: baseURL, http: http.DefaultClient}
}

type WriteResult struct {
	Confirmations int  `json:"confirmations"`
	QuorumMet     bool `json:"quorum_met"`
}

func (c *KVClient) Write(key, value string) (WriteResult, error) {
	body, err := json.Marshal(map[string]string{"key": key, "value": value})
	if err != nil {
		return WriteResult{}, err
	}
	resp, err := c.http.Post(c.baseURL+"/write", "application/json", bytes.NewReader(body))
	if err != nil {
		return WriteResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return WriteResult{}, &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	var out WriteResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return WriteResult{}, err
	}
	return out, nil
}

func (c *KVClient) Read(key string) (string, error) {
	resp, err := c.http.Get(c.baseURL + "/read?key=" + url.QueryEscape(key))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	var out struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Value, nil
}
