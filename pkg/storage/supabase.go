// Package storage is the object-storage collaborator: it uploads files to
// Supabase Storage buckets and returns their public URLs. Objects are
// namespaced as {ownerID}/{timestamp}.{ext} and uploaded with x-upsert, so
// re-uploading the same key overwrites.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"go-jobmatch-backend/pkg/logger"
)

type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

// New creates a storage client. baseURL is the Supabase project URL;
// serviceKey must be a service-role key with storage write access.
func New(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// IsConfigured reports whether uploads can be attempted at all.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.serviceKey != ""
}

// Upload stores data under {ownerID}/{unix-nanos}{ext} in the given bucket
// and returns the public URL. Images are downscaled to JPEG first; other
// content types pass through unchanged.
func (c *Client) Upload(ctx context.Context, bucket, ownerID, filename string, data []byte) (string, error) {
	if !c.IsConfigured() {
		return "", fmt.Errorf("storage: client not configured")
	}

	contentType := http.DetectContentType(data)
	ext := strings.ToLower(path.Ext(filename))

	if strings.HasPrefix(contentType, "image/") {
		compressed, err := CompressImage(data, maxImageDimension, jpegQuality)
		if err != nil {
			// Keep the original bytes; a photo the stdlib decoder rejects is
			// still better stored than dropped here.
			logger.Log.Warn("image compression failed, uploading original",
				"filename", filename, "error", err)
		} else {
			data = compressed
			contentType = "image/jpeg"
			ext = ".jpg"
		}
	}
	if ext == "" {
		ext = ".bin"
	}

	objectKey := fmt.Sprintf("%s/%d%s", ownerID, time.Now().UnixNano(), ext)
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, objectKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("storage: upload %s: status %d: %s", objectKey, resp.StatusCode, string(body))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, objectKey), nil
}
