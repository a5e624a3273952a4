package scheduler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	pullrhttp "github.com/tanq16/pullr/internal/downloaders/http"
	"github.com/tanq16/pullr/internal/utils"
)

// downloaderRegistry maps job types to their downloader implementations
var downloaderRegistry = map[string]utils.Downloader{
	"http": &pullrhttp.HTTPDownloader{},
}

// Run performs a single job: validate, build (send the request), download.
func Run(ctx context.Context, job *utils.Job) error {
	return runWith(ctx, job, downloaderRegistry)
}

func runWith(ctx context.Context, job *utils.Job, registry map[string]utils.Downloader) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	logger := log.With().Str("op", "scheduler").Str("job", job.ID).Logger()

	downloader, exists := registry[job.JobType]
	if !exists {
		return fmt.Errorf("unknown job type: %s", job.JobType)
	}

	logger.Debug().Msgf("Validating %s job", job.JobType)
	if err := downloader.ValidateJob(job); err != nil {
		return err
	}

	logger.Debug().Msgf("Building %s job", job.JobType)
	if err := downloader.BuildJob(ctx, job); err != nil {
		return err
	}

	logger.Debug().Msgf("Downloading to %s", job.OutputPath)
	if err := downloader.Download(job); err != nil {
		return fmt.Errorf("failed to download file: %w", err)
	}
	logger.Debug().Msgf("Downloaded file %s", job.OutputPath)
	return nil
}
