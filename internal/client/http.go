package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// HTTPClient makes REST calls to the Portrait Studio backend.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient creates a client targeting the given base URL
// (e.g. "http://127.0.0.1:8080").
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Generate requests a new render in the given style. It spends one credit
// server-side; the updated balance arrives over the WebSocket.
func (c *HTTPClient) Generate(styleID string) (*Job, error) {
	body := map[string]string{"styleId": styleID}
	var job Job
	if err := c.post("/api/generate", body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetCredits fetches /api/credits.
func (c *HTTPClient) GetCredits() (int, error) {
	var p CreditsPayload
	if err := c.get("/api/credits", &p); err != nil {
		return 0, err
	}
	return p.Balance, nil
}

// GetPortraits fetches /api/portraits.
func (c *HTTPClient) GetPortraits() ([]*Portrait, error) {
	var out []*Portrait
	if err := c.get("/api/portraits", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelJob sends POST /api/jobs/{id}/cancel.
func (c *HTTPClient) CancelJob(jobID string) error {
	return c.post("/api/jobs/"+jobID+"/cancel", nil, nil)
}

// Download fetches a portrait's full-resolution render into destDir and
// returns the written path.
func (c *HTTPClient) Download(portraitID, destDir string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/portraits/"+portraitID+"/download", nil)
	if err != nil {
		return "", err
	}
	c.setAuth(req)
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("download %s: %d %s", portraitID, resp.StatusCode, string(body))
	}

	path := filepath.Join(destDir, portraitID+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func (c *HTTPClient) get(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.setAuth(req)
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GET %s: %d %s", path, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) post(path string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("POST %s: %d %s", path, resp.StatusCode, string(respBody))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *HTTPClient) setAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
