// Package snapshot saves a PNG of a rendered graph page using headless Chrome.
package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	viewportWidth  = 1600
	viewportHeight = 1200
	// Time given to the physics simulation before the screenshot is taken.
	settleTime = 3 * time.Second
)

// fileURL turns a local path into a file:// URL Chrome can navigate to.
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// Capture opens htmlPath in headless Chrome, waits for the page body and the layout to
// settle, and writes a PNG screenshot to pngPath.
func Capture(ctx context.Context, htmlPath, pngPath string, timeout time.Duration) error {
	target, err := fileURL(htmlPath)
	if err != nil {
		return err
	}

	timeoutCtx, timeoutCancel := context.WithTimeout(ctx, timeout)
	defer timeoutCancel()

	chromeCtx, cancel := chromedp.NewContext(timeoutCtx)
	defer cancel()

	var png []byte
	err = chromedp.Run(chromeCtx,
		chromedp.EmulateViewport(viewportWidth, viewportHeight),
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleTime),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, err := page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				Do(ctx)
			png = buf
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("capture %s: %w", htmlPath, err)
	}

	return os.WriteFile(pngPath, png, 0o644)
}
