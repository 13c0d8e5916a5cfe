// Package transfer talks to a transfer.sh-compatible file hosting service:
// a PUT uploads a file and the response body is the retrieval URL, a GET
// downloads it. One attempt per operation; every failure is terminal.
package transfer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	pg "dvm/src/util/progress"
)

// RequestError reports a failed upload or download. Status is non-zero for
// HTTP-level failures (non-2xx) and zero for transport-level ones, in which
// case Err carries the transport error.
type RequestError struct {
	Op     string // "upload" or "download"
	Status int
	Reason string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s failed: HTTP %d - %s", e.Op, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client issues the upload/download requests. The zero value uses
// http.DefaultClient semantics with no timeout (the historical behavior);
// set Timeout to bound each request.
type Client struct {
	Timeout time.Duration

	httpClient *http.Client
}

// New returns a Client with the given per-request timeout (0 = unbounded).
func New(timeout time.Duration) *Client {
	return &Client{Timeout: timeout}
}

func (c *Client) client() *http.Client {
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.Timeout}
	}
	return c.httpClient
}

// UploadURL joins endpoint and name into the PUT target, normalizing the
// endpoint's trailing slashes so no double slash appears.
func UploadURL(endpoint, name string) string {
	return strings.TrimRight(endpoint, "/") + "/" + name
}

// Upload streams filePath as the body of a PUT to endpoint/name and returns
// the whitespace-trimmed response body, which the service uses as the
// retrieval URL. name defaults to the file's base name. maxDays, when
// positive, is sent as a Max-Days header; endpoints that do not understand
// it simply ignore it. Status lines go to statusOut.
func (c *Client) Upload(filePath, endpoint, name string, maxDays int, statusOut io.Writer) (string, error) {
	if name == "" {
		name = filepath.Base(filePath)
	}
	url := UploadURL(endpoint, name)

	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat archive: %w", err)
	}

	if statusOut != nil {
		fmt.Fprintf(statusOut, "Uploading %s (%s) to %s ...\n",
			filepath.Base(filePath), humanize.IBytes(uint64(fi.Size())), url)
	}

	var body io.Reader = f
	if statusOut != nil {
		body = pg.NewReader(f, fi.Size(), "upload", statusOut)
	}
	req, err := http.NewRequest(http.MethodPut, url, body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.ContentLength = fi.Size()
	if maxDays > 0 {
		req.Header.Set("Max-Days", strconv.Itoa(maxDays))
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return "", &RequestError{Op: "upload", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &RequestError{Op: "upload", Status: resp.StatusCode, Reason: httpReason(resp)}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RequestError{Op: "upload", Err: err}
	}
	if statusOut != nil {
		fmt.Fprintln(statusOut, "Upload complete.")
	}
	return strings.TrimSpace(string(b)), nil
}

// Download issues a GET for url and streams the response body to destPath in
// bounded chunks, so large archives never sit in memory.
func (c *Client) Download(url, destPath string, statusOut io.Writer) error {
	if statusOut != nil {
		fmt.Fprintf(statusOut, "Downloading %s ...\n", url)
	}

	resp, err := c.client().Get(url)
	if err != nil {
		return &RequestError{Op: "download", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Op: "download", Status: resp.StatusCode, Reason: httpReason(resp)}
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}

	var body io.Reader = resp.Body
	if statusOut != nil && resp.ContentLength > 0 {
		body = pg.NewReader(resp.Body, resp.ContentLength, "download", statusOut)
	}
	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		return &RequestError{Op: "download", Err: err}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", destPath, err)
	}
	if statusOut != nil {
		fmt.Fprintf(statusOut, "Download saved to %s\n", destPath)
	}
	return nil
}

// httpReason extracts a short server-supplied reason from a failed response.
func httpReason(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if s := strings.TrimSpace(string(b)); s != "" {
		return s
	}
	return http.StatusText(resp.StatusCode)
}
