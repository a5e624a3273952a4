package pullrhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/pullr/internal/utils"
)

type HTTPDownloader struct{}

func (d *HTTPDownloader) ValidateJob(job *utils.Job) error {
	method, err := utils.ParseMethod(job.Method)
	if err != nil {
		return err
	}
	job.Method = method
	if job.RawHeader != "" {
		header, err := utils.ParseHeader(job.RawHeader)
		if err != nil {
			return err
		}
		job.Header = &header
		log.Debug().Str("op", "http/initial").Msgf("Created header (%s: %s)", header.Name, header.Value)
	}
	if _, err := url.Parse(job.URL); err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	return nil
}

func (d *HTTPDownloader) BuildJob(ctx context.Context, job *utils.Job) error {
	client := utils.NewHTTPClient(job.HTTPClientConfig)
	log.Debug().Str("op", "http/initial").Msg("Created client")
	req, err := client.NewRequest(ctx, job.Method, job.URL, job.Header)
	if err != nil {
		return err
	}
	log.Debug().Str("op", "http/initial").Msgf("Sending %s request to %s", job.Method, job.URL)
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	// the body is still downloaded for non-2xx responses
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Str("op", "http/initial").Int("status", resp.StatusCode).Msgf("Request failed with status code: %s", resp.Status)
	}
	log.Debug().Str("op", "http/initial").Msgf("Received response with %s", resp.Status)

	job.OutputPath = utils.ResolveOutputPath(job.OutputPath, resp.Header)
	job.Response = resp
	log.Debug().Str("op", "http/initial").Msgf("Resolved output path %s", job.OutputPath)
	return nil
}

func (d *HTTPDownloader) Download(job *utils.Job) error {
	resp := job.Response
	if resp == nil {
		return errors.New("no response to download, job was not built")
	}
	defer resp.Body.Close()

	transfer, err := StreamToFile(resp.Body, declaredLength(resp), job.OutputPath, job.ProgressFunc)
	job.Transfer = transfer
	if err != nil {
		return err
	}
	if job.FinishFunc != nil {
		job.FinishFunc()
	}
	return nil
}

// declaredLength is the response Content-Length, or 0 when the server did not
// send one.
func declaredLength(resp *http.Response) int64 {
	if resp.ContentLength < 0 {
		return 0
	}
	return resp.ContentLength
}
