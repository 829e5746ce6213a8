package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/projectbridge/projectbridge/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// pageCache is shared by every URL ingestion in the process. Iterating on a
// resume against the same posting re-fetches nothing within the TTL.
var pageCache = fetch.NewCachedFetcher(nil, 0)

// URLOptions configures URL ingestion.
type URLOptions struct {
	// UseBrowser enables headless-browser fallback for SPA job boards whose
	// HTTP response carries no content.
	UseBrowser bool
	Verbose    bool
}

// IngestFromURL fetches a job posting URL, extracts the posting text using
// platform-specific selectors, cleans it, and returns it with metadata.
func IngestFromURL(ctx context.Context, urlStr string, opts URLOptions) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if opts.Verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	result, err := pageCache.Fetch(ctx, urlStr)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes (from cache: %v)", len(result.HTML), result.FromCache)
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(textContent))
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(textContent) {
		if opts.Verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering...",
				len(textContent), fetch.MinContentLength)
		}

		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, opts.Verbose)
		if browserErr != nil {
			if opts.Verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else if browserText, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			textContent = browserText
			if opts.Verbose {
				log.Printf("[VERBOSE] Browser extracted text: %d chars", len(textContent))
			}
		}
	}

	cleaned := CleanText(textContent)
	metadata := NewMetadata(cleaned, urlStr, SourceURL)
	metadata.Platform = string(platform)

	return cleaned, metadata, nil
}
