package utils

import (
	"context"
	"errors"
	"net/http"
)

type Downloader interface {
	ValidateJob(job *Job) error
	BuildJob(ctx context.Context, job *Job) error
	Download(job *Job) error
}

type Job struct {
	ID               string
	JobType          string
	URL              string
	Method           string // raw --type value until ValidateJob normalises it
	RawHeader        string
	Header           *Header
	OutputPath       string
	ProgressFunc     func(written, total int64)
	FinishFunc       func()
	HTTPClientConfig HTTPClientConfig
	Response         *http.Response
	Transfer         *Transfer
}

// Transfer is one response-body-to-file copy. DestinationPath is fixed before
// the copy starts; BytesWritten only grows.
type Transfer struct {
	TotalBytes      int64
	BytesWritten    int64
	DestinationPath string
}

type Header struct {
	Name  string
	Value string
}

const ChunkSize = 1024
const DefaultOutputName = "output"
const DefaultExtension = "txt"
const ToolUserAgent = "pullr-cli"

var ErrInvalidType = errors.New("invalid type of request")
var ErrMalformedHeader = errors.New("malformed header")
