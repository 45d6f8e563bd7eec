package vidu

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
)

const (
	// DefaultChunkSize is the streaming buffer size for downloads.
	DefaultChunkSize = 8192

	// DefaultFilenamePrefix names downloaded artifacts when neither the
	// caller nor the task supplies a prefix.
	DefaultFilenamePrefix = "vidu_creation"
)

// Artifacts returns the task's outputs. It is empty unless the task
// succeeded and never fails.
func (t *Task) Artifacts() []Artifact {
	if t.State != StateSucceeded {
		return nil
	}
	return t.Creations
}

// PrimaryURL returns the first artifact's media URL, or "" if the task has
// not succeeded.
func (t *Task) PrimaryURL() string {
	artifacts := t.Artifacts()
	if len(artifacts) == 0 {
		return ""
	}
	return artifacts[0].URL
}

// CoverURL returns the first artifact's cover image URL, or "" if absent.
func (t *Task) CoverURL() string {
	artifacts := t.Artifacts()
	if len(artifacts) == 0 {
		return ""
	}
	return artifacts[0].CoverURL
}

// DownloadFile streams a remote file to dest in chunkSize pieces, creating
// parent directories as needed. The body is never held in memory whole. On
// failure mid-stream the destination's partial contents are undefined;
// treat any error as "delete and retry", never as partially valid.
func (c *Client) DownloadFile(ctx context.Context, rawURL, dest string, chunkSize int) (string, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	if dir := filepath.Dir(dest); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Op: "GET " + rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", newAPIError(Code(strconv.Itoa(resp.StatusCode)), nil)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	buf := make([]byte, chunkSize)
	_, err = io.CopyBuffer(f, resp.Body, buf)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", &TransportError{Op: "downloading " + rawURL, Err: err}
	}

	return dest, nil
}

// DownloadArtifacts downloads every artifact of a succeeded task into dir
// under deterministic names: {prefix}_{artifactID}{ext} for the primary
// file and {prefix}_{artifactID}_cover{ext} for the cover. The prefix
// defaults to the task id. It returns a label-to-path map keyed main_N and
// cover_N, and fails locally if the task has not succeeded.
func (c *Client) DownloadArtifacts(ctx context.Context, task *Task, dir, prefix string) (map[string]string, error) {
	artifacts := task.Artifacts()
	if len(artifacts) == 0 {
		return nil, &ValidationError{Field: "task", Reason: "task has not succeeded or has no creations"}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating directory: %w", err)
	}

	if prefix == "" {
		prefix = task.TaskID
	}
	if prefix == "" {
		prefix = DefaultFilenamePrefix
	}

	downloaded := make(map[string]string)
	for i, artifact := range artifacts {
		id := artifact.ID
		if id == "" {
			id = fmt.Sprintf("creation_%d", i)
		}

		if artifact.URL != "" {
			name := fmt.Sprintf("%s_%s%s", prefix, id, fileExt(artifact.URL, ".mp4"))
			p, err := c.DownloadFile(ctx, artifact.URL, filepath.Join(dir, name), 0)
			if err != nil {
				return nil, err
			}
			downloaded[fmt.Sprintf("main_%d", i)] = p
		}

		if artifact.CoverURL != "" {
			name := fmt.Sprintf("%s_%s_cover%s", prefix, id, fileExt(artifact.CoverURL, ".jpg"))
			p, err := c.DownloadFile(ctx, artifact.CoverURL, filepath.Join(dir, name), 0)
			if err != nil {
				return nil, err
			}
			downloaded[fmt.Sprintf("cover_%d", i)] = p
		}
	}

	return downloaded, nil
}

// fileExt derives a file extension from a URL's path, ignoring query
// parameters (presigned URLs carry long query strings). Falls back when
// the path has no extension.
func fileExt(rawURL, fallback string) string {
	u, err := url.Parse(rawURL)
	if err == nil {
		if ext := path.Ext(u.Path); ext != "" {
			return ext
		}
	}
	return fallback
}
