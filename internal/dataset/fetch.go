package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"music-insights-go/internal/logger"
)

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Resolve returns a local path for the dataset source. An http(s) source is
// downloaded to a temp file with exponential-backoff retry; anything else is
// assumed to already be a local path.
func Resolve(source string) (string, error) {
	l := strings.ToLower(source)
	if !strings.HasPrefix(l, "http://") && !strings.HasPrefix(l, "https://") {
		return source, nil
	}
	return download(source)
}

func download(url string) (string, error) {
	log := logger.New().WithComponent("dataset.fetch").WithField("url", url)
	log.Info("downloading dataset")

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 90 * time.Second

	var path string
	operation := func() error {
		resp, err := httpClient.Get(url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error: %s", resp.Status)
		}
		if resp.StatusCode >= 300 {
			// client errors won't heal on retry
			return backoff.Permanent(fmt.Errorf("unexpected status: %s", resp.Status))
		}

		tmp, err := os.CreateTemp("", "ratings-*.xlsx")
		if err != nil {
			return backoff.Permanent(err)
		}
		defer tmp.Close()
		if _, err := io.Copy(tmp, resp.Body); err != nil {
			os.Remove(tmp.Name())
			return err
		}
		path = tmp.Name()
		return nil
	}

	if err := backoff.Retry(operation, bo); err != nil {
		log.WithError(err).Error("dataset download failed")
		return "", fmt.Errorf("download dataset: %w", err)
	}
	log.WithField("path", path).Info("dataset downloaded")
	return path, nil
}
