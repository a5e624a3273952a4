package pullrhttp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/pullr/internal/utils"
)

// StreamToFile copies body into outputPath in utils.ChunkSize reads. The file
// is created (or truncated) before the first read, so an empty body still
// leaves an empty file. A failure part way leaves the truncated file in place.
func StreamToFile(body io.Reader, totalBytes int64, outputPath string, progress func(written, total int64)) (*utils.Transfer, error) {
	if totalBytes < 0 {
		totalBytes = 0
	}
	transfer := &utils.Transfer{
		TotalBytes:      totalBytes,
		DestinationPath: outputPath,
	}

	outFile, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return transfer, fmt.Errorf("error creating output file: %w", err)
	}
	defer outFile.Close()
	if progress != nil {
		progress(0, transfer.TotalBytes)
	}

	buffer := make([]byte, utils.ChunkSize)
	for {
		bytesRead, readErr := body.Read(buffer)
		if bytesRead > 0 {
			written, writeErr := outFile.Write(buffer[:bytesRead])
			if writeErr == nil && written != bytesRead {
				writeErr = io.ErrShortWrite
			}
			if writeErr != nil {
				return transfer, fmt.Errorf("error writing to output file: %w", writeErr)
			}
			transfer.BytesWritten += int64(bytesRead)
			if progress != nil {
				progress(transfer.BytesWritten, transfer.TotalBytes)
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return transfer, fmt.Errorf("error reading response body: %w", readErr)
		}
		// a zero-byte read also ends the stream
		if bytesRead == 0 {
			break
		}
	}

	if err := outFile.Close(); err != nil {
		return transfer, fmt.Errorf("error closing output file: %w", err)
	}
	log.Debug().Str("op", "http/simple-downloader").Msgf("Wrote %s to %s", utils.FormatBytes(uint64(transfer.BytesWritten)), outputPath)
	return transfer, nil
}
