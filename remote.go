package chart

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/etnz/chart/date"
)

// contains http utils to read series exported by remote services

// diskCache implements a simple disk cache for HTTP responses, the key is
// unique per day so that cached responses expire every day.
type diskCache struct {
	base  http.RoundTripper
	dir   string
	today func() date.Date
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", c.today(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("write-cache key=%s error=%q (ignored)", key, err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0644)
}

// DailyClient returns a client caching responses in dir, for a day. An empty
// dir uses the temporary directory.
func DailyClient(dir string) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	return &http.Client{Transport: &diskCache{base: http.DefaultTransport, dir: dir, today: date.Today}}
}

// IsURL reports whether name is an http or https URL rather than a file name.
func IsURL(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

// DecodeURL decodes the series served at addr, choosing the format like
// DecodeFile from the extension of the URL path.
func DecodeURL(ctx context.Context, client *http.Client, addr, jsonpath string) (Series, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", addr, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid request %q: %w", addr, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot http GET %v: %w", addr, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", u.Host, u.Path, resp.Status)
	}
	return decode(resp.Body, addr, path.Ext(u.Path), jsonpath)
}

// decode decodes r in the format of the extension ext.
func decode(r io.Reader, name, ext, jsonpath string) (Series, error) {
	switch strings.ToLower(ext) {
	case ".jsonl":
		return DecodeSeries(r, name)
	case ".csv":
		return DecodeCSV(r, name)
	case ".json":
		if jsonpath == "" {
			return nil, fmt.Errorf("cannot decode %q: a jsonpath expression is required for json documents", name)
		}
		return DecodeJSONPath(r, jsonpath, name)
	default:
		return nil, fmt.Errorf("cannot decode %q: unknown series format %q", name, ext)
	}
}
